// Package hostmock provides a configurable mock pack runtime for testing
// host-side invocation logic without loading a real wasm module.
//
// The mock honors the staging protocol a real pack exposes (allocate,
// write, call, deallocate) and by default answers the way a compliant
// pack would: status 0 for valid UTF-8 arguments, -1 otherwise. Tests
// override Status, Fail, or the bounds behavior to exercise failure
// paths that are hard to trigger against a real runtime.
package hostmock
