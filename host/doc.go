// Package host provides the host side of the pack boundary: a wazero
// based Executor that loads pack modules, an Instance that stages
// argument bytes into pack memory and invokes the entry export, and a
// Loader for the out-of-band pack manifest.
//
// The Instance talks to packs only through the PackRuntime port, so
// every memory access is bounds-checked and the invocation logic is
// testable against the hostmock package without a compiled wasm module.
package host
