package entities

// Outcome is the discriminated result of a single pack invocation.
// Internal logic works with Outcome values; the integer wire codes exist
// only at the literal boundary call sites (the guest export and the host
// instance).
type Outcome int

const (
	// OutcomeSuccess indicates the argument decoded and the effect ran.
	OutcomeSuccess Outcome = iota

	// OutcomeInvalidEncoding indicates the argument bytes were not valid
	// UTF-8. The effect did not run.
	OutcomeInvalidEncoding

	// OutcomeInvalidRange indicates the argument range could not be read
	// or written. Only the host runtime can detect this; the guest has no
	// way to verify the range it is handed.
	OutcomeInvalidRange

	// OutcomeInternal indicates the pack faulted while handling the call.
	// The export glue recovers the panic and reports this instead of
	// trapping the host.
	OutcomeInternal
)

// Wire status codes. The mapping from Outcome to code is total and
// stable: the same variant always yields the same code.
const (
	StatusSuccess         int32 = 0
	StatusInvalidEncoding int32 = -1
	StatusInvalidRange    int32 = -2
	StatusInternal        int32 = -3
)

// StatusCode returns the wire status code for the outcome.
func (o Outcome) StatusCode() int32 {
	switch o {
	case OutcomeSuccess:
		return StatusSuccess
	case OutcomeInvalidEncoding:
		return StatusInvalidEncoding
	case OutcomeInvalidRange:
		return StatusInvalidRange
	default:
		return StatusInternal
	}
}

// IsSuccess returns true if the outcome indicates success.
func (o Outcome) IsSuccess() bool {
	return o == OutcomeSuccess
}

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalidEncoding:
		return "invalid_encoding"
	case OutcomeInvalidRange:
		return "invalid_range"
	case OutcomeInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// OutcomeFromStatus maps a wire status code back to an Outcome. The
// second return is false for codes outside the documented contract; the
// host must not guess at their meaning.
func OutcomeFromStatus(code int32) (Outcome, bool) {
	switch code {
	case StatusSuccess:
		return OutcomeSuccess, true
	case StatusInvalidEncoding:
		return OutcomeInvalidEncoding, true
	case StatusInvalidRange:
		return OutcomeInvalidRange, true
	case StatusInternal:
		return OutcomeInternal, true
	default:
		return OutcomeInternal, false
	}
}
