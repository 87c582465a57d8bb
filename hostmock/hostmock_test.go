package hostmock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stage(t *testing.T, m *Mock, data []byte) (uint32, uint32) {
	t.Helper()
	ptr, err := m.Allocate(context.Background(), uint32(len(data)))
	require.NoError(t, err)
	if len(data) > 0 {
		require.True(t, m.Write(ptr, data))
	}
	return ptr, uint32(len(data))
}

func TestMockDefaultBehavior(t *testing.T) {
	m, err := New(Config{})
	require.NoError(t, err)

	ptr, length := stage(t, m, []byte("World"))
	results, err := m.Call(context.Background(), "greet", uint64(ptr), uint64(length))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int32(0), int32(uint32(results[0])))

	ptr, length = stage(t, m, []byte{0xFF, 0xFE})
	results, err = m.Call(context.Background(), "greet", uint64(ptr), uint64(length))
	require.NoError(t, err)
	assert.Equal(t, int32(-1), int32(uint32(results[0])))
}

func TestMockUnexpectedExport(t *testing.T) {
	m, err := New(Config{})
	require.NoError(t, err)

	_, err = m.Call(context.Background(), "salute")
	assert.ErrorIs(t, err, ErrUnexpectedExport)
}

func TestMockFail(t *testing.T) {
	m, err := New(Config{Fail: true})
	require.NoError(t, err)
	_, err = m.Call(context.Background(), "greet")
	assert.ErrorIs(t, err, ErrOperationFailed)

	m, err = New(Config{Fail: true, Error: assert.AnError})
	require.NoError(t, err)
	_, err = m.Call(context.Background(), "greet")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMockArgumentValidator(t *testing.T) {
	var seen []byte
	m, err := New(Config{
		ArgumentValidator: func(arg []byte) error {
			seen = append([]byte{}, arg...)
			return nil
		},
	})
	require.NoError(t, err)

	ptr, length := stage(t, m, []byte("World"))
	_, err = m.Call(context.Background(), "greet", uint64(ptr), uint64(length))
	require.NoError(t, err)
	assert.Equal(t, []byte("World"), seen)
}

func TestMockBoundsFailures(t *testing.T) {
	m, err := New(Config{FailWrite: true})
	require.NoError(t, err)
	ptr, allocErr := m.Allocate(context.Background(), 5)
	require.NoError(t, allocErr)
	assert.False(t, m.Write(ptr, []byte("World")))

	m, err = New(Config{FailRead: true})
	require.NoError(t, err)
	_, ok := m.Read(1024, 5)
	assert.False(t, ok)
}

func TestMockUnstagedRange(t *testing.T) {
	m, err := New(Config{})
	require.NoError(t, err)
	_, err = m.Call(context.Background(), "greet", uint64(9999), uint64(5))
	assert.Error(t, err)
}

func TestMockDeallocateTracking(t *testing.T) {
	m, err := New(Config{})
	require.NoError(t, err)

	ptr, _ := stage(t, m, []byte("World"))
	require.NoError(t, m.Deallocate(context.Background(), ptr, 5))
	assert.Equal(t, []uint32{ptr}, m.Deallocated)

	// Idempotent, like the guest's deallocate.
	require.NoError(t, m.Deallocate(context.Background(), ptr, 5))
}
