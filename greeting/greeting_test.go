package greeting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/RachEma-ux/pack-sdk/domain/errors"
)

func TestDecode(t *testing.T) {
	cases := map[string]struct {
		raw     []byte
		want    string
		wantErr bool
	}{
		"ascii":            {[]byte("World"), "World", false},
		"empty":            {[]byte{}, "", false},
		"nil":              {nil, "", false},
		"multibyte":        {[]byte("wörld 世界"), "wörld 世界", false},
		"embedded nul":     {[]byte("a\x00b"), "a\x00b", false},
		"invalid bytes":    {[]byte{0xFF, 0xFE}, "", true},
		"truncated rune":   {[]byte{0xE4, 0xB8}, "", true},
		"overlong":         {[]byte{0xC0, 0xAF}, "", true},
		"valid then junk":  {append([]byte("ok"), 0xFF), "", true},
		"lone surrogate":   {[]byte{0xED, 0xA0, 0x80}, "", true},
		"continuation only": {[]byte{0x80}, "", true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(tc.raw)
			if tc.wantErr {
				var encErr *sdkerrors.EncodingError
				require.ErrorAs(t, err, &encErr)
				assert.Equal(t, len(tc.raw), encErr.Length)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGreeterGreet(t *testing.T) {
	var buf bytes.Buffer
	g := New(&buf)

	require.NoError(t, g.Greet("World"))
	assert.Equal(t, "Hello, World!\n", buf.String())
}

func TestGreeterGreetEmpty(t *testing.T) {
	var buf bytes.Buffer
	g := New(&buf)

	require.NoError(t, g.Greet(""))
	assert.Equal(t, "Hello, !\n", buf.String())
}

func TestGreeterNoMemoization(t *testing.T) {
	var buf bytes.Buffer
	g := New(&buf)

	require.NoError(t, g.Greet("World"))
	require.NoError(t, g.Greet("World"))
	assert.Equal(t, 2, strings.Count(buf.String(), "Hello, World!\n"))
}

func TestGreeterNilWriterDefaultsToStdout(t *testing.T) {
	g := New(nil)
	assert.NotNil(t, g.out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestGreeterWriterFailure(t *testing.T) {
	g := New(failingWriter{})
	assert.Error(t, g.Greet("World"))
}
