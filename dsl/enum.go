package dsl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// EnumEntry pairs a symbolic name with its value.
type EnumEntry[E comparable] struct {
	Name  string
	Value E
}

// EnumValue is shorthand for an EnumEntry literal.
func EnumValue[E comparable](name string, v E) EnumEntry[E] {
	return EnumEntry[E]{Name: name, Value: v}
}

// Enum returns a table-driven enum codec. Decode requires a scalar whose
// text exactly matches a declared name; anything else fails with
// unknown_enum. When a name or value appears twice the first entry wins.
// Encoding never fails: undeclared values are written as "".
func Enum[E comparable](entries ...EnumEntry[E]) ys.Codec[E] {
	t := enumTable[E]{byName: make(map[string]E, len(entries)), byValue: make(map[E]string, len(entries))}
	for _, e := range entries {
		if _, dup := t.byName[e.Name]; !dup {
			t.byName[e.Name] = e.Value
			t.names = append(t.names, e.Name)
		}
		if _, dup := t.byValue[e.Value]; !dup {
			t.byValue[e.Value] = e.Name
		}
	}
	sort.Strings(t.names)
	return t
}

// EnumStringer builds the table from values whose String method yields the
// symbolic name, such as the output of the stringer tool.
func EnumStringer[E interface {
	comparable
	fmt.Stringer
}](values ...E) ys.Codec[E] {
	entries := make([]EnumEntry[E], 0, len(values))
	for _, v := range values {
		entries = append(entries, EnumValue(v.String(), v))
	}
	return Enum(entries...)
}

type enumTable[E comparable] struct {
	byName  map[string]E
	byValue map[E]string
	names   []string
}

func (t enumTable[E]) Decode(ctx context.Context, n *yaml.Node) (E, error) {
	var zero E
	s, err := decodeScalar[string](n, "enum")
	if err != nil {
		return zero, err
	}
	v, ok := t.byName[s]
	if !ok {
		return zero, unknownEnum(nodes.Resolve(n), s, t.names)
	}
	return v, nil
}

// Encode writes the declared name of v. A value outside the table, such as
// the zero value of a field that was never set, is written as an empty string.
func (t enumTable[E]) Encode(ctx context.Context, v E) (*yaml.Node, error) {
	name, ok := t.byValue[v]
	if !ok {
		level.Debug(ys.LoggerFrom(ctx)).Log("msg", "enum value has no declared name", "path", ys.PathFrom(ctx), "value", fmt.Sprint(v))
	}
	return nodes.Str(name), nil
}

// EnumFunc returns an enum codec backed by caller-supplied conversions. A
// decode error becomes unknown_enum; a decode function that returns a
// fallback value with a nil error is honoured as is.
func EnumFunc[E any](decode func(string) (E, error), encode func(E) string) ys.Codec[E] {
	return enumFunc[E]{decode: decode, encode: encode}
}

type enumFunc[E any] struct {
	decode func(string) (E, error)
	encode func(E) string
}

func (f enumFunc[E]) Decode(ctx context.Context, n *yaml.Node) (E, error) {
	var zero E
	s, err := decodeScalar[string](n, "enum")
	if err != nil {
		return zero, err
	}
	v, err := f.decode(s)
	if err != nil {
		iss := unknownEnum(nodes.Resolve(n), s, nil)
		iss[0].Cause = err
		return zero, iss
	}
	return v, nil
}

func (f enumFunc[E]) Encode(ctx context.Context, v E) (*yaml.Node, error) {
	return nodes.Str(f.encode(v)), nil
}

func unknownEnum(n *yaml.Node, s string, names []string) ys.Issues {
	iss := ys.IssueAt(n, ys.CodeUnknownEnum, s)
	iss[0].InputFragment = s
	if len(names) > 0 {
		iss[0].Hint = "one of " + strings.Join(names, ", ")
		iss[0].Params = map[string]any{"allowed": names}
	}
	return iss
}
