package dsl

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// Pair is a heterogeneous 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a heterogeneous 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2 returns a codec for a sequence of exactly two elements.
func Tuple2[A, B any](a ys.Codec[A], b ys.Codec[B]) ys.Codec[Pair[A, B]] {
	return tuple2Codec[A, B]{a: a, b: b}
}

type tuple2Codec[A, B any] struct {
	a ys.Codec[A]
	b ys.Codec[B]
}

func (t tuple2Codec[A, B]) Decode(ctx context.Context, n *yaml.Node) (Pair[A, B], error) {
	var out Pair[A, B]
	items, err := tupleItems(n, 2)
	if err != nil {
		return out, err
	}
	if out.First, err = decodeItem(ctx, t.a, items[0], 0); err != nil {
		return Pair[A, B]{}, err
	}
	if out.Second, err = decodeItem(ctx, t.b, items[1], 1); err != nil {
		return Pair[A, B]{}, err
	}
	return out, nil
}

func (t tuple2Codec[A, B]) Encode(ctx context.Context, v Pair[A, B]) (*yaml.Node, error) {
	first, err := t.a.Encode(ctx, v.First)
	if err != nil {
		return nil, ys.PrefixPath(err, "0")
	}
	second, err := t.b.Encode(ctx, v.Second)
	if err != nil {
		return nil, ys.PrefixPath(err, "1")
	}
	return nodes.Seq(first, second), nil
}

// Tuple3 returns a codec for a sequence of exactly three elements.
func Tuple3[A, B, C any](a ys.Codec[A], b ys.Codec[B], c ys.Codec[C]) ys.Codec[Triple[A, B, C]] {
	return tuple3Codec[A, B, C]{a: a, b: b, c: c}
}

type tuple3Codec[A, B, C any] struct {
	a ys.Codec[A]
	b ys.Codec[B]
	c ys.Codec[C]
}

func (t tuple3Codec[A, B, C]) Decode(ctx context.Context, n *yaml.Node) (Triple[A, B, C], error) {
	var out Triple[A, B, C]
	items, err := tupleItems(n, 3)
	if err != nil {
		return out, err
	}
	if out.First, err = decodeItem(ctx, t.a, items[0], 0); err != nil {
		return Triple[A, B, C]{}, err
	}
	if out.Second, err = decodeItem(ctx, t.b, items[1], 1); err != nil {
		return Triple[A, B, C]{}, err
	}
	if out.Third, err = decodeItem(ctx, t.c, items[2], 2); err != nil {
		return Triple[A, B, C]{}, err
	}
	return out, nil
}

func (t tuple3Codec[A, B, C]) Encode(ctx context.Context, v Triple[A, B, C]) (*yaml.Node, error) {
	first, err := t.a.Encode(ctx, v.First)
	if err != nil {
		return nil, ys.PrefixPath(err, "0")
	}
	second, err := t.b.Encode(ctx, v.Second)
	if err != nil {
		return nil, ys.PrefixPath(err, "1")
	}
	third, err := t.c.Encode(ctx, v.Third)
	if err != nil {
		return nil, ys.PrefixPath(err, "2")
	}
	return nodes.Seq(first, second, third), nil
}

// tupleItems returns the elements of a sequence that must hold exactly want
// items.
func tupleItems(n *yaml.Node, want int) ([]*yaml.Node, error) {
	items, err := sequenceItems(n)
	if err != nil {
		return nil, err
	}
	if len(items) != want {
		iss := ys.IssueAt(nodes.Resolve(n), ys.CodeShapeMismatch,
			fmt.Sprintf("expected %d elements, got %d", want, len(items)))
		iss[0].Hint = strconv.Itoa(want) + "-tuple"
		iss[0].Params = map[string]any{"expected": want, "got": len(items)}
		return nil, iss
	}
	return items, nil
}
