package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachEma-ux/pack-sdk/domain/entities"
	sdkerrors "github.com/RachEma-ux/pack-sdk/domain/errors"
	"github.com/RachEma-ux/pack-sdk/hostmock"
)

func newMock(t *testing.T, cfg hostmock.Config) *hostmock.Mock {
	t.Helper()
	m, err := hostmock.New(cfg)
	require.NoError(t, err)
	return m
}

func TestGreetValidArgument(t *testing.T) {
	m := newMock(t, hostmock.Config{})
	inst := NewInstance(m)

	outcome, err := inst.Greet(context.Background(), "World")
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeSuccess, outcome)
	assert.Equal(t, []string{"greet"}, m.Calls)
}

func TestGreetInvalidEncoding(t *testing.T) {
	m := newMock(t, hostmock.Config{})
	inst := NewInstance(m)

	outcome, err := inst.GreetBytes(context.Background(), []byte{0xFF, 0xFE})
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeInvalidEncoding, outcome)
}

func TestGreetEmptyArgument(t *testing.T) {
	m := newMock(t, hostmock.Config{})
	inst := NewInstance(m)

	outcome, err := inst.Greet(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeSuccess, outcome)

	// No staging for an empty view: nothing to free afterwards.
	assert.Empty(t, m.Deallocated)
}

func TestGreetIdempotent(t *testing.T) {
	m := newMock(t, hostmock.Config{})
	inst := NewInstance(m)

	first, err := inst.Greet(context.Background(), "World")
	require.NoError(t, err)
	second, err := inst.Greet(context.Background(), "World")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, m.Calls, 2)
}

func TestGreetReleasesStagedArgument(t *testing.T) {
	m := newMock(t, hostmock.Config{})
	inst := NewInstance(m)

	_, err := inst.Greet(context.Background(), "World")
	require.NoError(t, err)
	assert.Len(t, m.Deallocated, 1, "the staging buffer must be released after the call")
}

func TestGreetStagedBytesReachThePack(t *testing.T) {
	var staged []byte
	m := newMock(t, hostmock.Config{
		ArgumentValidator: func(arg []byte) error {
			staged = append([]byte{}, arg...)
			return nil
		},
	})
	inst := NewInstance(m)

	_, err := inst.Greet(context.Background(), "wörld 世界")
	require.NoError(t, err)
	assert.Equal(t, []byte("wörld 世界"), staged)
}

func TestGreetWriteOutOfBounds(t *testing.T) {
	m := newMock(t, hostmock.Config{FailWrite: true})
	inst := NewInstance(m)

	outcome, err := inst.Greet(context.Background(), "World")
	require.Error(t, err)
	assert.Equal(t, entities.OutcomeInvalidRange, outcome)

	var boundsErr *sdkerrors.BoundsError
	assert.ErrorAs(t, err, &boundsErr)

	// The failed staging buffer is still released.
	assert.Len(t, m.Deallocated, 1)
}

func TestGreetCallFailure(t *testing.T) {
	m := newMock(t, hostmock.Config{Fail: true})
	inst := NewInstance(m)

	outcome, err := inst.Greet(context.Background(), "World")
	require.Error(t, err)
	assert.Equal(t, entities.OutcomeInternal, outcome)
}

func TestGreetUndocumentedStatus(t *testing.T) {
	m := newMock(t, hostmock.Config{
		Status: func([]byte) int32 { return 7 },
	})
	inst := NewInstance(m)

	outcome, err := inst.Greet(context.Background(), "World")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undocumented status")
	assert.Equal(t, entities.OutcomeInternal, outcome)
}

func TestGreetArgumentTooLarge(t *testing.T) {
	m := newMock(t, hostmock.Config{})
	inst := NewInstance(m, WithMaxArgumentSize(4))

	outcome, err := inst.Greet(context.Background(), "World")
	require.Error(t, err)
	assert.Equal(t, entities.OutcomeInvalidRange, outcome)
	assert.Empty(t, m.Calls, "oversized arguments are rejected before staging")
}

func TestGreetCustomEntry(t *testing.T) {
	m := newMock(t, hostmock.Config{ExpectedEntry: "salute"})
	inst := NewInstance(m, WithEntry("salute"))

	outcome, err := inst.Greet(context.Background(), "World")
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeSuccess, outcome)
	assert.Equal(t, []string{"salute"}, m.Calls)
}

func TestGreetWrongEntry(t *testing.T) {
	m := newMock(t, hostmock.Config{ExpectedEntry: "salute"})
	inst := NewInstance(m)

	_, err := inst.Greet(context.Background(), "World")
	assert.ErrorIs(t, err, hostmock.ErrUnexpectedExport)
}
