package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	infrawazero "github.com/RachEma-ux/pack-sdk/infrastructure/wazero"
)

// ErrPackExited reports a pack whose start function terminated the
// instance during instantiation. Go packs built as plain wasip1 commands
// do this: _start runs main, main returns, and the runtime exits the
// module, leaving every export uncallable. A zero exit code is not an
// instantiation error in wazero, so the closed module is the only
// signal left.
var ErrPackExited = errors.New("pack exited during instantiation: it was built as a wasip1 command; rebuild with -buildmode=c-shared so its exports stay callable")

// Executor manages the lifecycle of pack modules on the host side. It
// owns a wazero runtime, instantiates packs with their stdout/stderr
// wired to the configured writers, and hands out Instances for
// invocation.
type Executor struct {
	runtime      wazero.Runtime
	stdout       io.Writer
	stderr       io.Writer
	instanceOpts []InstanceOption
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	return e, nil
}

// Close releases resources held by the executor and every pack it
// instantiated.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// LoadPack instantiates a wasm pack module. Packs must be built in
// reactor mode (GOOS=wasip1 GOARCH=wasm, -buildmode=c-shared) so their
// exports remain callable after instantiation; a pack built as a plain
// command runs main and exits during loading, which LoadPack reports as
// ErrPackExited instead of handing back a dead instance.
func (e *Executor) LoadPack(ctx context.Context, wasmBytes []byte) (*Instance, error) {
	cfg := wazero.NewModuleConfig().
		WithStdout(e.stdout).
		WithStderr(e.stderr)

	mod, err := e.runtime.InstantiateWithConfig(ctx, wasmBytes, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate pack: %w", err)
	}

	// A start function exiting with code zero closes the module without
	// an error; every later export call would fail with an opaque
	// closed-module message, so reject it here.
	if mod.IsClosed() {
		return nil, ErrPackExited
	}

	// Reactor-style builds expose _initialize instead of a start function.
	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return NewInstance(infrawazero.NewRuntime(mod), e.instanceOpts...), nil
}
