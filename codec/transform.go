package codec

import (
	"context"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// Transform derives a Codec[B] from a wire codec for A and a pair of
// conversions. Conversion errors become scalar_parse issues on decode and
// encode_error issues on encode, located at the offending node.
func Transform[A, B any](wire ys.Codec[A], decode func(A) (B, error), encode func(B) (A, error)) ys.Codec[B] {
	return &transformCodec[A, B]{wire: wire, decode: decode, encode: encode}
}

type transformCodec[A, B any] struct {
	wire   ys.Codec[A]
	decode func(A) (B, error)
	encode func(B) (A, error)
	target string
}

func (c *transformCodec[A, B]) Decode(ctx context.Context, n *yaml.Node) (B, error) {
	var zero B
	a, err := c.wire.Decode(ctx, n)
	if err != nil {
		return zero, err
	}
	b, err := c.decode(a)
	if err != nil {
		return zero, ys.ScalarParse(nodes.Resolve(n), c.targetName(), err)
	}
	return b, nil
}

func (c *transformCodec[A, B]) Encode(ctx context.Context, b B) (*yaml.Node, error) {
	a, err := c.encode(b)
	if err != nil {
		iss := ys.IssueAt(nil, ys.CodeEncode, err.Error())
		iss[0].Cause = err
		return nil, iss
	}
	return c.wire.Encode(ctx, a)
}

func (c *transformCodec[A, B]) targetName() string {
	if c.target != "" {
		return c.target
	}
	return "value"
}

// named sets the target name used in scalar_parse messages.
func named[A, B any](c ys.Codec[B], target string) ys.Codec[B] {
	if tc, ok := c.(*transformCodec[A, B]); ok {
		tc.target = target
	}
	return c
}
