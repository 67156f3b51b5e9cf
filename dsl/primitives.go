package dsl

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// IntType is the set of integer kinds accepted by Int.
type IntType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FloatType is the set of floating point kinds accepted by Float.
type FloatType interface {
	~float32 | ~float64
}

// Int returns a codec for integer type T. Values that overflow T fail with
// scalar_parse.
func Int[T IntType]() ys.Codec[T] { return scalarCodec[T]{target: fmt.Sprintf("%T", T(0))} }

// Float returns a codec for floating point type T.
func Float[T FloatType]() ys.Codec[T] { return scalarCodec[T]{target: fmt.Sprintf("%T", T(0))} }

// Bool returns the bool codec.
func Bool() ys.Codec[bool] { return scalarCodec[bool]{target: "bool"} }

// String returns the string codec. Any non-null scalar decodes to its text.
func String() ys.Codec[string] { return scalarCodec[string]{target: "string"} }

// StringOf returns a codec for a domain type T with underlying string.
func StringOf[T ~string]() ys.Codec[T] { return scalarCodec[T]{target: fmt.Sprintf("%T", T(""))} }

// BoolOf returns a codec for a domain type T with underlying bool.
func BoolOf[T ~bool]() ys.Codec[T] { return scalarCodec[T]{target: fmt.Sprintf("%T", T(false))} }

// scalarCodec relies on yaml.v3's own typed scalar coercion, which already
// rejects mismatched tags and out-of-range numbers.
type scalarCodec[T any] struct{ target string }

func (c scalarCodec[T]) Decode(ctx context.Context, n *yaml.Node) (T, error) {
	return decodeScalar[T](n, c.target)
}

func (c scalarCodec[T]) Encode(ctx context.Context, v T) (*yaml.Node, error) {
	return encodeScalar(v)
}

// Uint8 returns the codec for single-byte unsigned integers. The value goes
// through a uint32 intermediate so the text is always read and written as a
// decimal number, never as a character.
func Uint8() ys.Codec[uint8] { return uint8Codec{} }

type uint8Codec struct{}

func (uint8Codec) Decode(ctx context.Context, n *yaml.Node) (uint8, error) {
	wide, err := decodeScalar[uint32](n, "uint8")
	if err != nil {
		return 0, err
	}
	if wide > math.MaxUint8 {
		return 0, ys.ScalarParse(nodes.Resolve(n), "uint8", fmt.Errorf("value %d overflows uint8", wide))
	}
	return uint8(wide), nil
}

func (uint8Codec) Encode(ctx context.Context, v uint8) (*yaml.Node, error) {
	return encodeScalar(uint32(v))
}

// Char returns a codec between a one-character string and a rune.
func Char() ys.Codec[rune] { return charCodec{} }

type charCodec struct{}

func (charCodec) Decode(ctx context.Context, n *yaml.Node) (rune, error) {
	s, err := decodeScalar[string](n, "char")
	if err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, ys.ScalarParse(nodes.Resolve(n), "char", fmt.Errorf("expected exactly one character, got %d", utf8.RuneCountInString(s)))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func (charCodec) Encode(ctx context.Context, v rune) (*yaml.Node, error) {
	return nodes.Str(string(v)), nil
}

// ---- helpers shared by every scalar-backed codec ----

// scalarNode returns the resolved scalar behind n, or a shape_mismatch issue
// for null, absent and container nodes.
func scalarNode(n *yaml.Node) (*yaml.Node, error) {
	if nodes.KindOf(n) != nodes.KindScalar {
		return nil, ys.ShapeMismatch(nodes.Resolve(n), nodes.KindScalar)
	}
	return nodes.Resolve(n), nil
}

func decodeScalar[T any](n *yaml.Node, target string) (T, error) {
	var v T
	s, err := scalarNode(n)
	if err != nil {
		return v, err
	}
	if s.ShortTag() == "!!str" && reflect.TypeFor[T]().Kind() != reflect.String {
		// quoted text such as "7000" converts like the plain scalar would
		plain := *s
		plain.Tag, plain.Style = "", 0
		s = &plain
	}
	if err := s.Decode(&v); err != nil {
		var zero T
		return zero, ys.ScalarParse(s, target, err)
	}
	return v, nil
}

func encodeScalar(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, ys.Issues{{Path: "/", Code: ys.CodeEncode, Message: err.Error(), Cause: err}}
	}
	return n, nil
}
