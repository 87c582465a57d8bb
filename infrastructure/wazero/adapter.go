// Package wazero adapts a wazero api.Module to the SDK's PackRuntime
// port. It is the host-side counterpart of the guest's abi seam: all
// access to pack memory goes through wazero's bounds-checked Memory API,
// so an out-of-range view is detected instead of read.
package wazero

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/RachEma-ux/pack-sdk/domain/ports"
)

// Runtime wraps an instantiated wasm module as a ports.PackRuntime.
type Runtime struct {
	module api.Module
}

// NewRuntime creates a Runtime over an instantiated module.
func NewRuntime(module api.Module) *Runtime {
	return &Runtime{module: module}
}

// Read returns a copy of the bytes at [ptr, ptr+length). It reports
// false when the range falls outside the pack's linear memory.
func (r *Runtime) Read(ptr, length uint32) ([]byte, bool) {
	view, ok := r.module.Memory().Read(ptr, length)
	if !ok {
		return nil, false
	}
	// Copy out: the underlying buffer may move if the pack grows memory.
	data := make([]byte, length)
	copy(data, view)
	return data, true
}

// Write copies data into pack memory starting at ptr. It reports false
// when the destination range is out of bounds.
func (r *Runtime) Write(ptr uint32, data []byte) bool {
	return r.module.Memory().Write(ptr, data)
}

// Allocate calls the pack's allocate export and returns the reserved
// offset.
func (r *Runtime) Allocate(ctx context.Context, size uint32) (uint32, error) {
	fn := r.module.ExportedFunction("allocate")
	if fn == nil {
		return 0, fmt.Errorf("pack does not export 'allocate'")
	}
	results, err := fn.Call(ctx, uint64(size))
	if err != nil {
		return 0, fmt.Errorf("pack allocate failed: %w", err)
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("pack allocate returned no results")
	}
	return uint32(results[0]), nil //nolint:gosec // G115: WASM32 pointers are always 32-bit
}

// Deallocate calls the pack's deallocate export.
func (r *Runtime) Deallocate(ctx context.Context, ptr, size uint32) error {
	fn := r.module.ExportedFunction("deallocate")
	if fn == nil {
		return fmt.Errorf("pack does not export 'deallocate'")
	}
	if _, err := fn.Call(ctx, uint64(ptr), uint64(size)); err != nil {
		return fmt.Errorf("pack deallocate failed: %w", err)
	}
	return nil
}

// Call invokes an exported function by name.
func (r *Runtime) Call(ctx context.Context, name string, params ...uint64) ([]uint64, error) {
	fn := r.module.ExportedFunction(name)
	if fn == nil {
		return nil, fmt.Errorf("export %q not found", name)
	}
	return fn.Call(ctx, params...)
}

var _ ports.PackRuntime = (*Runtime)(nil)
