package host

import "io"

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithStdout redirects the loaded packs' standard output. The greeting
// effect lands here.
func WithStdout(w io.Writer) Option {
	return func(e *Executor) {
		e.stdout = w
	}
}

// WithStderr redirects the loaded packs' standard error (the SDK's log
// channel).
func WithStderr(w io.Writer) Option {
	return func(e *Executor) {
		e.stderr = w
	}
}

// WithInstanceOptions applies the given instance options to every pack
// the executor loads.
func WithInstanceOptions(opts ...InstanceOption) Option {
	return func(e *Executor) {
		e.instanceOpts = append(e.instanceOpts, opts...)
	}
}
