package dsl

import (
	"context"
	"strings"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// Alternative is one arm of a OneOf codec over the sum type T (usually an
// interface implemented by every arm).
type Alternative[T any] interface {
	name() string
	decode(ctx context.Context, n *yaml.Node) (T, error)
	// encode reports ok=false when v is not this arm's type.
	encode(ctx context.Context, v T) (n *yaml.Node, ok bool, err error)
}

// Variant declares an alternative of sum type T carried by concrete type A.
// A must be assignable to T.
func Variant[T, A any](name string, c ys.Codec[A]) Alternative[T] {
	return variant[T, A]{label: name, codec: c}
}

type variant[T, A any] struct {
	label string
	codec ys.Codec[A]
}

func (v variant[T, A]) name() string { return v.label }

func (v variant[T, A]) decode(ctx context.Context, n *yaml.Node) (T, error) {
	a, err := v.codec.Decode(ctx, n)
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := any(a).(T)
	if !ok {
		var zero T
		return zero, ys.IssueAt(n, ys.CodeInvalidSchema, v.label+" does not implement the sum type")
	}
	return t, nil
}

func (v variant[T, A]) encode(ctx context.Context, t T) (*yaml.Node, bool, error) {
	a, ok := any(t).(A)
	if !ok {
		return nil, false, nil
	}
	n, err := v.codec.Encode(ctx, a)
	return n, true, err
}

// OneOf returns a codec that tries each alternative in declaration order and
// keeps the first that decodes. When none does, the error lists every
// alternative tried. Encoding dispatches on the dynamic type of the value; a
// nil interface value encodes as null.
func OneOf[T any](alts ...Alternative[T]) ys.Codec[T] { return oneOfCodec[T]{alts: alts} }

type oneOfCodec[T any] struct{ alts []Alternative[T] }

func (o oneOfCodec[T]) Decode(ctx context.Context, n *yaml.Node) (T, error) {
	names := make([]string, 0, len(o.alts))
	var causes ys.Issues
	for _, alt := range o.alts {
		scoped, commit := ys.ScopeMeta(ctx)
		v, err := alt.decode(scoped, n)
		if err == nil {
			commit()
			return v, nil
		}
		names = append(names, alt.name())
		causes = append(causes, ys.ToIssues(err, ys.CodeParseError)...)
	}
	var zero T
	iss := ys.IssueAt(n, ys.CodeNoMatchingVariant, "tried "+strings.Join(names, ", "))
	iss[0].Hint = strings.Join(names, "|")
	iss[0].Params = map[string]any{"tried": names, "causes": causes}
	return zero, iss
}

func (o oneOfCodec[T]) Encode(ctx context.Context, v T) (*yaml.Node, error) {
	if any(v) == nil {
		return nodes.Null(), nil
	}
	for _, alt := range o.alts {
		n, ok, err := alt.encode(ctx, v)
		if !ok {
			continue
		}
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, ys.IssueAt(nil, ys.CodeEncode, "no variant accepts the value")
}
