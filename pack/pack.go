// Package pack provides the guest-side lifecycle of a Builder pack: the
// handler registration called from the pack's main, and the export glue
// that turns a host-provided byte range into a safe value, runs the
// effect, and maps the outcome to a wire status.
package pack

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/RachEma-ux/pack-sdk/domain/entities"
	"github.com/RachEma-ux/pack-sdk/greeting"
)

// Pack is the interface a pack implements to handle host invocations.
// The name is the already-decoded argument text; the boundary layer has
// validated it before the handler runs.
type Pack interface {
	Greet(name string) error
}

// registered holds the pack registered by main. WASM guests are
// single-threaded, so a plain global is sufficient.
var registered Pack

// onFault, when set, runs during panic recovery. The wasm export glue
// uses it to release pinned allocations so a faulting call does not leak.
var onFault func()

// Register installs p as the pack invoked by the host. Call this once
// from the pack's main before any export can be invoked.
func Register(p Pack) {
	registered = p
}

// HandleGreet is the invocation path behind the greet export. It decodes
// raw strictly as UTF-8, runs the registered pack's effect, and returns
// the tagged outcome. Conversion to the wire integer happens only at the
// export itself.
//
// The call holds no state: each invocation starts fresh and nothing
// survives past the return, so concurrent hosts may re-enter freely.
func HandleGreet(raw []byte) (out entities.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			if onFault != nil {
				onFault()
			}
			detail := &entities.ErrorDetail{
				Message: fmt.Sprintf("pack panic: %v", r),
				Type:    "panic",
				Stack:   debug.Stack(),
			}
			slog.Error("pack: panic recovered during invocation",
				"error", detail.Message, "stack", string(detail.Stack))
			out = entities.OutcomeInternal
		}
	}()

	p := registered
	if p == nil {
		slog.Error("pack: no pack registered")
		return entities.OutcomeInternal
	}

	name, err := greeting.Decode(raw)
	if err != nil {
		slog.Debug("pack: rejecting argument", "error", err)
		return entities.OutcomeInvalidEncoding
	}

	if err := p.Greet(name); err != nil {
		slog.Error("pack: greeting effect failed", "error", err)
		return entities.OutcomeInternal
	}

	return entities.OutcomeSuccess
}
