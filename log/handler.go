// Package log provides structured logging (slog) adapted for the pack's
// WASM environment. The Builder host provides no logging callback, so the
// handler writes key=value lines to stderr, keeping the greeting's stdout
// channel clean. Hosts that capture stderr see the pack's logs; hosts
// that don't simply discard them.
//
// Packs opt in with a blank import:
//
//	import _ "github.com/RachEma-ux/pack-sdk/log"
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler implements slog.Handler over a single output writer.
type Handler struct {
	mu    *sync.Mutex
	out   io.Writer
	opts  handlerConfig
	attrs []slog.Attr // keys already carry their group prefix
	// prefix is the dotted path of open groups, applied to every
	// attribute added after the corresponding WithGroup call.
	prefix string
}

// HandlerOption configures the Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Level
	addSource bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report.
// Records below this level are filtered on the guest side.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewHandler creates a Handler writing to out with the given options.
// A nil writer falls back to stderr.
func NewHandler(out io.Writer, opts ...HandlerOption) *Handler {
	if out == nil {
		out = os.Stderr
	}
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Handler{mu: &sync.Mutex{}, out: out, opts: cfg}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// Handle renders the record as a single key=value line.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	line := fmt.Sprintf("level=%s msg=%q", record.Level, record.Message)

	for _, attr := range h.attrs {
		line = appendAttr(line, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		line = appendAttr(line, h.prefix, attr)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, line)
	return err
}

// WithAttrs returns a new Handler that includes the given attributes,
// qualified with the groups open at this point.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	qualified := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		attr.Key = h.prefix + attr.Key
		qualified[i] = attr
	}
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), qualified...)
	return &clone
}

// WithGroup returns a new Handler that prefixes subsequent attribute
// keys with the group name. Groups are flattened into dotted keys
// rather than nested structures.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendAttr(line, prefix string, attr slog.Attr) string {
	if rendered := formatAttr(prefix, attr); rendered != "" {
		return line + " " + rendered
	}
	return line
}

func formatAttr(prefix string, attr slog.Attr) string {
	attr.Value = attr.Value.Resolve()
	key := prefix + attr.Key
	switch attr.Value.Kind() {
	case slog.KindString:
		return fmt.Sprintf("%s=%q", key, attr.Value.String())
	case slog.KindGroup:
		childPrefix := key
		if attr.Key != "" {
			childPrefix += "."
		}
		parts := make([]string, 0, len(attr.Value.Group()))
		for _, member := range attr.Value.Group() {
			if rendered := formatAttr(childPrefix, member); rendered != "" {
				parts = append(parts, rendered)
			}
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%s=%v", key, attr.Value.Any())
	}
}

// init routes the default slog logger through the pack handler.
func init() {
	slog.SetDefault(slog.New(NewHandler(nil)))
}
