package dsl

import (
	"context"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// Array returns a codec for ordered lists. The node must be a sequence.
func Array[E any](elem ys.Codec[E]) ys.Codec[[]E] { return arrayCodec[E]{elem: elem} }

type arrayCodec[E any] struct{ elem ys.Codec[E] }

func (a arrayCodec[E]) Decode(ctx context.Context, n *yaml.Node) ([]E, error) {
	items, err := sequenceItems(n)
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, len(items))
	for i, it := range items {
		v, err := decodeItem(ctx, a.elem, it, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (a arrayCodec[E]) Encode(ctx context.Context, vs []E) (*yaml.Node, error) {
	seq := nodes.Seq()
	for i, v := range vs {
		n, err := a.elem.Encode(ctx, v)
		if err != nil {
			return nil, ys.PrefixPath(err, strconv.Itoa(i))
		}
		seq.Content = append(seq.Content, n)
	}
	return seq, nil
}

// Set returns a codec for unordered unique collections. Duplicate values in
// the sequence collapse. Encoding orders elements by their scalar text so the
// output is stable.
func Set[E comparable](elem ys.Codec[E]) ys.Codec[map[E]struct{}] { return setCodec[E]{elem: elem} }

type setCodec[E comparable] struct{ elem ys.Codec[E] }

func (s setCodec[E]) Decode(ctx context.Context, n *yaml.Node) (map[E]struct{}, error) {
	items, err := sequenceItems(n)
	if err != nil {
		return nil, err
	}
	out := make(map[E]struct{}, len(items))
	for i, it := range items {
		v, err := decodeItem(ctx, s.elem, it, i)
		if err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}
	return out, nil
}

func (s setCodec[E]) Encode(ctx context.Context, vs map[E]struct{}) (*yaml.Node, error) {
	seq := nodes.Seq()
	for v := range vs {
		n, err := s.elem.Encode(ctx, v)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, n)
	}
	sortByText(seq.Content)
	return seq, nil
}

// ---- helpers ----

func sequenceItems(n *yaml.Node) ([]*yaml.Node, error) {
	if nodes.KindOf(n) != nodes.KindSequence {
		return nil, ys.ShapeMismatch(nodes.Resolve(n), nodes.KindSequence)
	}
	return nodes.Resolve(n).Content, nil
}

func decodeItem[E any](ctx context.Context, c ys.Codec[E], n *yaml.Node, i int) (E, error) {
	seg := strconv.Itoa(i)
	v, err := c.Decode(ys.WithSegment(ctx, seg), n)
	if err != nil {
		var zero E
		return zero, ys.PrefixPath(err, seg)
	}
	return v, nil
}

// sortByText orders scalar nodes by their text. Two integers compare by
// value, so -10 sorts before 2 and 2 before 10.
func sortByText(ns []*yaml.Node) {
	sort.SliceStable(ns, func(i, j int) bool { return textLess(ns[i], ns[j]) })
}

func textLess(a, b *yaml.Node) bool {
	if a.Tag == "!!int" && b.Tag == "!!int" {
		if x, err := strconv.ParseInt(a.Value, 10, 64); err == nil {
			if y, err := strconv.ParseInt(b.Value, 10, 64); err == nil {
				return x < y
			}
		}
		// values above MaxInt64
		if x, err := strconv.ParseUint(a.Value, 10, 64); err == nil {
			if y, err := strconv.ParseUint(b.Value, 10, 64); err == nil {
				return x < y
			}
		}
	}
	return a.Value < b.Value
}
