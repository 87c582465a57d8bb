// Package greeting holds the pack's pure core: strict decoding of the
// host-provided argument bytes and the greeting effect itself. Nothing
// here knows about linear memory or status codes; it operates only on
// values the boundary layer has already made safe.
package greeting

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/RachEma-ux/pack-sdk/domain/errors"
)

// Decode interprets raw as UTF-8 text. The whole range must decode: any
// byte sequence that is not valid UTF-8 end-to-end is rejected in full,
// with no lossy or partial mode. An empty range decodes to the empty
// string.
func Decode(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", &errors.EncodingError{Length: len(raw)}
	}
	return string(raw), nil
}

// Greeter emits greetings to an output channel. In a hosted deployment
// the channel is the pack's stdout, which the host may capture or
// redirect.
type Greeter struct {
	out io.Writer
}

// New creates a Greeter writing to out. A nil writer falls back to
// stdout.
func New(out io.Writer) *Greeter {
	if out == nil {
		out = os.Stdout
	}
	return &Greeter{out: out}
}

// Greet writes the greeting for name. The decoded text is incorporated
// exactly: no trimming, no truncation.
func (g *Greeter) Greet(name string) error {
	_, err := fmt.Fprintf(g.out, "Hello, %s!\n", name)
	return err
}
