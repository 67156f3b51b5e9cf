package dsl

import (
	"context"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// Optional wraps inner so that null and absent decode to nil. Encoding nil
// emits an explicit null; a non-nil value is encoded by inner directly.
//
// Record fields using Optional stay lenient in strict mode.
func Optional[T any](inner ys.Codec[T]) ys.Codec[*T] { return optionalCodec[T]{inner: inner} }

// optionalMarker is implemented by codecs whose zero value means "no value".
type optionalMarker interface{ optional() }

type optionalCodec[T any] struct{ inner ys.Codec[T] }

func (optionalCodec[T]) optional() {}

func (c optionalCodec[T]) Decode(ctx context.Context, n *yaml.Node) (*T, error) {
	if nodes.IsNull(n) {
		return nil, nil
	}
	v, err := c.inner.Decode(ctx, n)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c optionalCodec[T]) Encode(ctx context.Context, v *T) (*yaml.Node, error) {
	if v == nil {
		return nodes.Null(), nil
	}
	return c.inner.Encode(ctx, *v)
}
