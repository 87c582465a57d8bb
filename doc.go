// Package packsdk is the root of the Builder pack SDK.
//
// A pack is a WebAssembly module loaded by the Builder mobile-device
// orchestration host and invoked through a single exported function. The
// host owns every byte that crosses the boundary: it passes a pointer and
// a length into the pack's linear memory and receives a single integer
// status back. Nothing richer than that integer ever crosses the wire.
//
// The SDK is split along that boundary:
//
//   - The guest side (pack, greeting, internal/abi) is what a pack author
//     builds into a wasm module. It validates the host-provided byte range,
//     performs the pack's effect, and maps the outcome to a status code.
//   - The host side (host, infrastructure/wazero, hostmock) loads packs
//     with wazero and invokes their exports with bounds-checked memory
//     access, for local development and testing.
//
// Shared vocabulary (domain/entities, domain/errors, domain/ports) keeps
// both halves speaking about the same Outcome and status codes, so magic
// numbers appear only at the literal boundary call sites.
package packsdk
