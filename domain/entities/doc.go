// Package entities provides the core domain types shared by the guest and
// host halves of the SDK: the invocation outcome and its wire status
// codes, the argument view, the pack manifest, and structured error
// details. Types here carry no I/O and no unsafe code.
package entities
