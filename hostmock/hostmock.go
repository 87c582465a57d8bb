package hostmock

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/RachEma-ux/pack-sdk/domain/entities"
	"github.com/RachEma-ux/pack-sdk/domain/ports"
)

var _ ports.PackRuntime = (*Mock)(nil)

var (
	// ErrUnexpectedExport is returned when an export other than the
	// expected one is called.
	ErrUnexpectedExport = errors.New("unexpected export")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Mock simulates a loaded pack with validation and configurable
// responses. It implements ports.PackRuntime, including the guest's
// allocate/deallocate staging protocol, so host-side invocation logic is
// testable without a compiled wasm artifact.
type Mock struct {
	// ExpectedEntry is the export name expected in the invocation.
	ExpectedEntry string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// ArgumentValidator validates the staged argument bytes before the
	// status is produced.
	ArgumentValidator func([]byte) error

	// Status computes the wire status for the staged argument bytes.
	// The default mimics a compliant pack: 0 for valid UTF-8, -1
	// otherwise.
	Status func([]byte) int32

	// Fail indicates whether Call should return an error.
	Fail bool

	// FailWrite makes Write report an out-of-bounds destination.
	FailWrite bool

	// FailRead makes Read report an out-of-bounds range.
	FailRead bool

	// Calls records every export invocation in order.
	Calls []string

	// Deallocated records every pointer released via Deallocate.
	Deallocated []uint32

	allocations map[uint32][]byte
	nextPtr     uint32
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedEntry is the export name expected in the invocation.
	// Defaults to the manifest default entry.
	ExpectedEntry string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// ArgumentValidator validates the staged argument bytes.
	ArgumentValidator func([]byte) error

	// Status computes the wire status for the staged argument bytes.
	Status func([]byte) int32

	// Fail indicates whether Call should return an error.
	Fail bool

	// FailWrite makes Write report an out-of-bounds destination.
	FailWrite bool

	// FailRead makes Read report an out-of-bounds range.
	FailRead bool
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	entry := config.ExpectedEntry
	if entry == "" {
		entry = entities.DefaultEntry
	}
	return &Mock{
		ExpectedEntry:     entry,
		Error:             config.Error,
		ArgumentValidator: config.ArgumentValidator,
		Status:            config.Status,
		Fail:              config.Fail,
		FailWrite:         config.FailWrite,
		FailRead:          config.FailRead,
		allocations:       make(map[uint32][]byte),
		nextPtr:           1024,
	}, nil
}

// Allocate reserves a simulated guest buffer and returns its offset.
func (m *Mock) Allocate(_ context.Context, size uint32) (uint32, error) {
	if size == 0 {
		return 0, nil
	}
	ptr := m.nextPtr
	m.nextPtr += size
	if rem := m.nextPtr % 8; rem != 0 {
		m.nextPtr += 8 - rem
	}
	m.allocations[ptr] = make([]byte, size)
	return ptr, nil
}

// Deallocate releases a simulated guest buffer. Untracked pointers are
// ignored, matching the guest's idempotent deallocate.
func (m *Mock) Deallocate(_ context.Context, ptr, _ uint32) error {
	m.Deallocated = append(m.Deallocated, ptr)
	delete(m.allocations, ptr)
	return nil
}

// Write copies data into a previously allocated buffer.
func (m *Mock) Write(ptr uint32, data []byte) bool {
	if m.FailWrite {
		return false
	}
	buf, ok := m.allocations[ptr]
	if !ok || len(data) > len(buf) {
		return false
	}
	copy(buf, data)
	return true
}

// Read returns a copy of a previously allocated buffer's prefix.
func (m *Mock) Read(ptr, length uint32) ([]byte, bool) {
	if m.FailRead {
		return nil, false
	}
	buf, ok := m.allocations[ptr]
	if !ok || int(length) > len(buf) {
		return nil, false
	}
	data := make([]byte, length)
	copy(data, buf[:length])
	return data, true
}

// Call simulates an export invocation, validating inputs and returning a
// status or error.
func (m *Mock) Call(_ context.Context, name string, params ...uint64) ([]uint64, error) {
	m.Calls = append(m.Calls, name)

	if m.Fail && m.Error != nil {
		return nil, m.Error
	}
	if m.Fail {
		return nil, ErrOperationFailed
	}

	if name != m.ExpectedEntry {
		return nil, fmt.Errorf("%w: expected export %s, got %s", ErrUnexpectedExport, m.ExpectedEntry, name)
	}

	var arg []byte
	if len(params) == 2 {
		ptr := uint32(params[0])
		length := uint32(params[1])
		if length > 0 {
			buf, ok := m.allocations[ptr]
			if !ok || int(length) > len(buf) {
				return nil, fmt.Errorf("argument range [%d, %d) not staged", ptr, ptr+length)
			}
			arg = buf[:length]
		}
	}

	if m.ArgumentValidator != nil {
		if err := m.ArgumentValidator(arg); err != nil {
			return nil, err
		}
	}

	status := m.status(arg)
	return []uint64{uint64(uint32(status))}, nil
}

func (m *Mock) status(arg []byte) int32 {
	if m.Status != nil {
		return m.Status(arg)
	}
	if !utf8.Valid(arg) {
		return entities.StatusInvalidEncoding
	}
	return entities.StatusSuccess
}
