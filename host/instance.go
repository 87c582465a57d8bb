package host

import (
	"context"
	"fmt"

	"github.com/RachEma-ux/pack-sdk/domain/entities"
	sdkerrors "github.com/RachEma-ux/pack-sdk/domain/errors"
	"github.com/RachEma-ux/pack-sdk/domain/ports"
)

// DefaultMaxArgumentSize limits the argument bytes staged into a pack
// (1MB). This prevents a misbehaving caller from growing pack memory
// without bound.
const DefaultMaxArgumentSize = 1 * 1024 * 1024

// Instance represents a loaded pack ready for invocation. It speaks to
// the pack only through the PackRuntime port, so the same invocation
// logic runs against wazero in production and a mock in tests.
type Instance struct {
	rt              ports.PackRuntime
	entry           string
	maxArgumentSize uint32
}

// InstanceOption configures an Instance.
type InstanceOption func(*Instance)

// WithEntry sets the export invoked by Greet. Defaults to the manifest
// default entry.
func WithEntry(name string) InstanceOption {
	return func(i *Instance) {
		i.entry = name
	}
}

// WithMaxArgumentSize sets the maximum argument size staged into pack
// memory.
func WithMaxArgumentSize(size uint32) InstanceOption {
	return func(i *Instance) {
		i.maxArgumentSize = size
	}
}

// NewInstance creates an Instance over a pack runtime.
func NewInstance(rt ports.PackRuntime, opts ...InstanceOption) *Instance {
	i := &Instance{
		rt:              rt,
		entry:           entities.DefaultEntry,
		maxArgumentSize: DefaultMaxArgumentSize,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Greet invokes the pack's entry export with name encoded as UTF-8.
func (i *Instance) Greet(ctx context.Context, name string) (entities.Outcome, error) {
	return i.GreetBytes(ctx, []byte(name))
}

// GreetBytes invokes the pack's entry export with raw argument bytes.
// The bytes are staged into pack memory via the allocate export, the
// entry is called with the range's address and length, and the staging
// buffer is released before returning. The pack owns the range only for
// the duration of the call.
//
// The returned Outcome reflects the pack's wire status on success. When
// the invocation itself fails, the error is non-nil and the Outcome
// names the failure class the host observed.
func (i *Instance) GreetBytes(ctx context.Context, arg []byte) (entities.Outcome, error) {
	if len(arg) > int(i.maxArgumentSize) {
		return entities.OutcomeInvalidRange, fmt.Errorf(
			"argument size %d exceeds maximum %d bytes", len(arg), i.maxArgumentSize)
	}

	var view entities.ArgumentView
	if len(arg) > 0 {
		size := uint32(len(arg))
		ptr, err := i.rt.Allocate(ctx, size)
		if err != nil {
			return entities.OutcomeInternal, fmt.Errorf("staging argument: %w", err)
		}
		view = entities.ArgumentView{Ptr: ptr, Len: size}

		if !i.rt.Write(ptr, arg) {
			_ = i.rt.Deallocate(ctx, ptr, size)
			return entities.OutcomeInvalidRange, &sdkerrors.BoundsError{Op: "write", View: view}
		}
		defer func() { _ = i.rt.Deallocate(ctx, view.Ptr, view.Len) }()
	}

	results, err := i.rt.Call(ctx, i.entry, uint64(view.Ptr), uint64(view.Len))
	if err != nil {
		return entities.OutcomeInternal, fmt.Errorf("invoking %q: %w", i.entry, err)
	}
	if len(results) == 0 {
		return entities.OutcomeInternal, fmt.Errorf("export %q returned no status", i.entry)
	}

	status := int32(uint32(results[0])) //nolint:gosec // G115: the wire result is an i32
	outcome, ok := entities.OutcomeFromStatus(status)
	if !ok {
		return entities.OutcomeInternal, fmt.Errorf("pack returned undocumented status %d", status)
	}
	return outcome, nil
}
