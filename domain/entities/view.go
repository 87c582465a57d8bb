package entities

// ArgumentView describes a read-only, non-owning view over a byte range
// in the pack's linear memory. The host allocates the range, writes the
// argument bytes into it, and must keep it alive until the call returns.
// The view must not be read after the call returns and never assumes a
// terminator byte exists.
type ArgumentView struct {
	// Ptr is the offset of the first byte in linear memory.
	Ptr uint32

	// Len is the number of bytes in the range.
	Len uint32
}

// Empty returns true if the view describes zero bytes. An empty view is
// valid input: it decodes to the empty string.
func (v ArgumentView) Empty() bool {
	return v.Len == 0
}

// Null returns true if the view has a zero pointer with a non-zero
// length, a combination no honest host produces.
func (v ArgumentView) Null() bool {
	return v.Ptr == 0 && v.Len > 0
}
