//go:build wasip1

package pack

import (
	"github.com/RachEma-ux/pack-sdk/domain/entities"
	"github.com/RachEma-ux/pack-sdk/internal/abi"
)

func init() {
	onFault = abi.FreeAllTracked
}

// greet is the pack's single domain export. The host passes the address
// and length of a byte range it owns and keeps alive for the duration of
// the call; the return value is the wire status code.
//
// The raw range is copied out exactly once, here, before any domain
// logic runs. Everything past abi.ReadView operates on guest-owned
// bytes.
//
//go:wasmexport greet
func greet(ptr uint32, length uint32) int32 {
	view := entities.ArgumentView{Ptr: ptr, Len: length}
	if view.Null() {
		// A null pointer with a non-zero length is the one contract
		// violation the guest can detect without reading anything.
		return entities.OutcomeInvalidRange.StatusCode()
	}
	return HandleGreet(abi.ReadView(view)).StatusCode()
}
