//go:build wasip1

// Package abi provides memory management for the WASM linear memory.
// It is the single seam where raw pointers are handled; every other
// package operates on safe, already-copied values.
package abi

import (
	"sync"
	"unsafe"

	"github.com/RachEma-ux/pack-sdk/domain/entities"
	"github.com/RachEma-ux/pack-sdk/domain/errors"
)

// MaxTotalAllocations is the maximum total memory that can be allocated
// by the SDK. This prevents unbounded memory growth in WASM linear memory.
const MaxTotalAllocations = 100 * 1024 * 1024 // 100 MB

// memoryManager tracks all allocations made by the SDK in WASM linear
// memory. It keeps a reference to allocated slices to prevent the Go GC
// from collecting them, effectively "pinning" the memory until explicitly
// freed or during panic recovery.
var memoryManager = struct {
	sync.Mutex
	ptrs           map[uint32][]byte // ptr -> slice reference
	totalAllocated int
}{
	ptrs: make(map[uint32][]byte),
}

// allocate reserves memory in the WASM linear memory and returns a
// pointer. The host writes argument bytes into this region before
// invoking the entry export. Panics if allocation would exceed the
// MaxTotalAllocations limit.
//
//go:wasmexport allocate
func allocate(size uint32) uint32 {
	if size == 0 {
		return 0
	}

	memoryManager.Lock()
	defer memoryManager.Unlock()

	if memoryManager.totalAllocated+int(size) > MaxTotalAllocations {
		panic(&errors.MemoryError{
			Requested: int(size),
			Current:   memoryManager.totalAllocated,
			Limit:     MaxTotalAllocations,
		})
	}

	buf := make([]byte, size)
	ptr := uint32(uintptr(unsafe.Pointer(&buf[0])))

	memoryManager.ptrs[ptr] = buf // pin so the GC cannot move or collect it
	memoryManager.totalAllocated += int(size)

	return ptr
}

// deallocate frees memory by removing the reference from the memory
// manager, allowing the Go GC to collect it. Decrements the counter by
// the actual stored slice length, not the passed size, to prevent counter
// corruption.
//
//go:wasmexport deallocate
func deallocate(ptr uint32, size uint32) {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	storedSlice, exists := memoryManager.ptrs[ptr]
	if !exists {
		return // Ignore untracked pointers (idempotent)
	}

	actualSize := len(storedSlice)
	delete(memoryManager.ptrs, ptr)
	memoryManager.totalAllocated -= actualSize

	if memoryManager.totalAllocated < 0 {
		memoryManager.totalAllocated = 0
	}
}

// FreeAllTracked frees all memory currently tracked by the SDK.
// Called during panic recovery so a faulting call does not leak pinned
// allocations.
func FreeAllTracked() {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	for ptr := range memoryManager.ptrs {
		delete(memoryManager.ptrs, ptr)
	}
	memoryManager.totalAllocated = 0
}

// ReadView copies the byte range described by view out of linear memory.
// The returned slice is owned by the guest: the caller may keep it after
// the call returns, while the view itself must not be touched again.
// The range's validity is the host's contract to uphold - the guest
// cannot verify it, which is why this read lives in the one unsafe seam.
func ReadView(view entities.ArgumentView) []byte {
	if view.Empty() {
		return nil
	}
	//nolint:gosec // G103: Valid unsafe.Pointer use for WASM linear memory access
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(view.Ptr))), view.Len)
	data := make([]byte, view.Len)
	copy(data, src)
	return data
}
