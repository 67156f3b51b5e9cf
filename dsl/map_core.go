package dsl

import (
	"context"
	"sort"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// Map returns a codec for YAML mappings. Keys are decoded from the key node
// with key, values with val. When a key repeats the last value wins.
// Encoding orders entries by the key's scalar text.
func Map[K comparable, V any](key ys.Codec[K], val ys.Codec[V]) ys.Codec[map[K]V] {
	return mapCodec[K, V]{key: key, val: val}
}

type mapCodec[K comparable, V any] struct {
	key ys.Codec[K]
	val ys.Codec[V]
}

func (m mapCodec[K, V]) Decode(ctx context.Context, n *yaml.Node) (map[K]V, error) {
	if nodes.KindOf(n) != nodes.KindMap {
		return nil, ys.ShapeMismatch(nodes.Resolve(n), nodes.KindMap)
	}
	mn := nodes.Resolve(n)
	if dups := nodes.DuplicateKeys(mn); len(dups) > 0 {
		level.Debug(ys.LoggerFrom(ctx)).Log("msg", "duplicate map keys, last wins", "path", ys.PathFrom(ctx), "keys", len(dups))
	}
	out := make(map[K]V, len(mn.Content)/2)
	err := nodes.Pairs(mn, func(kn, vn *yaml.Node) error {
		seg := kn.Value
		kctx := ys.WithSegment(ctx, seg)
		k, err := m.key.Decode(kctx, kn)
		if err != nil {
			return ys.PrefixPath(err, seg)
		}
		v, err := m.val.Decode(kctx, vn)
		if err != nil {
			return ys.PrefixPath(err, seg)
		}
		out[k] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m mapCodec[K, V]) Encode(ctx context.Context, vs map[K]V) (*yaml.Node, error) {
	type entry struct{ k, v *yaml.Node }
	entries := make([]entry, 0, len(vs))
	for k, v := range vs {
		kn, err := m.key.Encode(ctx, k)
		if err != nil {
			return nil, err
		}
		vn, err := m.val.Encode(ctx, v)
		if err != nil {
			return nil, ys.PrefixPath(err, kn.Value)
		}
		entries = append(entries, entry{kn, vn})
	}
	sort.SliceStable(entries, func(i, j int) bool { return textLess(entries[i].k, entries[j].k) })
	out := nodes.Map()
	for _, e := range entries {
		nodes.AppendNode(out, e.k, e.v)
	}
	return out, nil
}
