package yamlstruct

import (
	"context"

	"github.com/go-kit/log"
	"gopkg.in/yaml.v3"
)

// Codec converts between a YAML node and a typed value T.
//
// Decode receives nil when the value is absent (for example a missing map
// key). Implementations must be safe for concurrent use once constructed.
type Codec[T any] interface {
	Decode(ctx context.Context, n *yaml.Node) (T, error)
	Encode(ctx context.Context, v T) (*yaml.Node, error)
}

// Decode runs c over n. It is a thin wrapper that exists to mirror Encode.
func Decode[T any](ctx context.Context, c Codec[T], n *yaml.Node) (T, error) {
	return c.Decode(ctx, n)
}

// Encode runs c over v.
func Encode[T any](ctx context.Context, c Codec[T], v T) (*yaml.Node, error) {
	return c.Encode(ctx, v)
}

// ---- Decode-time context options (internal wiring, exported for subpackages) ----

type contextKey int

const (
	_ctxKeyStrict contextKey = iota
	_ctxKeyLogger
	_ctxKeyMeta
	_ctxKeyPath
)

// WithStrict returns a child context that disables field leniency for
// non-optional record fields: a missing or malformed field then fails the
// whole record instead of falling back to its default.
func WithStrict(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyStrict, enabled)
}

// IsStrict reports whether the current decode runs in strict mode.
func IsStrict(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyStrict).(bool)
	return b
}

// WithLogger attaches a logger used to report swallowed field failures.
func WithLogger(ctx context.Context, l log.Logger) context.Context {
	return context.WithValue(ctx, _ctxKeyLogger, l)
}

// LoggerFrom returns the logger attached to ctx, or a no-op logger.
func LoggerFrom(ctx context.Context) log.Logger {
	if l, ok := ctx.Value(_ctxKeyLogger).(log.Logger); ok && l != nil {
		return l
	}
	return log.NewNopLogger()
}

// WithSegment descends the current decode path by one JSON Pointer token.
func WithSegment(ctx context.Context, seg string) context.Context {
	return context.WithValue(ctx, _ctxKeyPath, PathFrom(ctx)+"/"+escapePointer(seg))
}

// PathFrom returns the JSON Pointer of the value being decoded ("" at the root).
func PathFrom(ctx context.Context) string {
	p, _ := ctx.Value(_ctxKeyPath).(string)
	return p
}
