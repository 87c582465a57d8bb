package ports

import "context"

// GuestMemory provides bounds-checked access to a pack's linear memory.
// Read and Write report false when any part of the range falls outside
// the memory the pack actually owns; the caller never touches a raw
// pointer.
type GuestMemory interface {
	// Read returns a copy of the bytes at [ptr, ptr+length). The copy is
	// safe to retain after the call.
	Read(ptr, length uint32) ([]byte, bool)

	// Write copies data into guest memory starting at ptr.
	Write(ptr uint32, data []byte) bool
}

// PackRuntime is the host's handle on a loaded pack. Implementations
// wrap a concrete wasm runtime (or a mock in tests) and expose only the
// operations the invocation path needs.
type PackRuntime interface {
	GuestMemory

	// Allocate asks the pack to reserve size bytes of linear memory and
	// returns the offset of the reservation.
	Allocate(ctx context.Context, size uint32) (uint32, error)

	// Deallocate releases a reservation previously returned by Allocate.
	Deallocate(ctx context.Context, ptr, size uint32) error

	// Call invokes an exported function by name.
	Call(ctx context.Context, name string, params ...uint64) ([]uint64, error)
}
