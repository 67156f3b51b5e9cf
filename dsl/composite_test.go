package dsl_test

import (
	"context"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	g "github.com/reoring/yamlstruct/dsl"
)

func TestArray_ErrorPathPointsAtElement(t *testing.T) {
	ctx := context.Background()
	c := g.Array(g.Int[int]())

	v, err := c.Decode(ctx, node(t, "[1, 2, 3]"))
	if err != nil || !reflect.DeepEqual(v, []int{1, 2, 3}) {
		t.Fatalf("decode: %v %v", v, err)
	}

	_, err = c.Decode(ctx, node(t, "[1, x, 3]"))
	if it := firstIssue(t, err); it.Path != "/1" || it.Code != ys.CodeScalarParse {
		t.Fatalf("unexpected issue: %+v", it)
	}

	_, err = c.Decode(ctx, node(t, "a: 1"))
	if it := firstIssue(t, err); it.Code != ys.CodeShapeMismatch {
		t.Fatalf("expected shape_mismatch, got %+v", it)
	}

	empty, err := c.Decode(ctx, node(t, "[]"))
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty sequence should decode to an empty, non-nil slice: %#v %v", empty, err)
	}
}

func TestSet_CollapsesDuplicates(t *testing.T) {
	ctx := context.Background()
	c := g.Set(g.Int[int]())
	v, err := c.Decode(ctx, node(t, "[1, 2, 2, 3]"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(v, map[int]struct{}{1: {}, 2: {}, 3: {}}) {
		t.Fatalf("got %v", v)
	}
	n, err := c.Encode(ctx, v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := emit(t, n); got != "- 1\n- 2\n- 3\n" {
		t.Fatalf("unexpected emit:\n%s", got)
	}
}

func TestSet_EncodesIntegersInNumericOrder(t *testing.T) {
	ctx := context.Background()
	n, err := g.Set(g.Int[int]()).Encode(ctx, map[int]struct{}{5: {}, -10: {}, 2: {}, 10: {}, -3: {}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := emit(t, n); got != "- -10\n- -3\n- 2\n- 5\n- 10\n" {
		t.Fatalf("unexpected emit:\n%s", got)
	}

	n, err = g.Map(g.Int[uint64](), g.String()).Encode(ctx, map[uint64]string{18446744073709551615: "max", 9: "nine"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := emit(t, n); got != "9: nine\n18446744073709551615: max\n" {
		t.Fatalf("unexpected emit:\n%s", got)
	}
}

func TestMap_LastDuplicateWinsAndSortedEncode(t *testing.T) {
	ctx := context.Background()
	c := g.Map(g.String(), g.Int[int]())

	v, err := c.Decode(ctx, node(t, "b: 1\na: 2\nb: 3\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]int{"a": 2, "b": 3}) {
		t.Fatalf("got %v", v)
	}

	n, err := c.Encode(ctx, v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := emit(t, n); got != "a: 2\nb: 3\n" {
		t.Fatalf("unexpected emit:\n%s", got)
	}

	_, err = c.Decode(ctx, node(t, "a: 1\nb: nope\n"))
	if it := firstIssue(t, err); it.Path != "/b" {
		t.Fatalf("expected path /b, got %+v", it)
	}
}

func TestMap_TupleValues(t *testing.T) {
	ctx := context.Background()
	c := g.Map(g.String(), g.Tuple2(g.String(), g.Int[int32]()))
	v, err := c.Decode(ctx, node(t, "test-default: [\"001\", 23]"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]g.Pair[string, int32]{"test-default": {First: "001", Second: 23}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %v", v)
	}
}

func TestTuple_Arity(t *testing.T) {
	ctx := context.Background()
	c := g.Tuple2(g.String(), g.Uint8())

	v, err := c.Decode(ctx, node(t, "[tuple, 58]"))
	if err != nil || v.First != "tuple" || v.Second != 58 {
		t.Fatalf("decode: %+v %v", v, err)
	}

	_, err = c.Decode(ctx, node(t, "[a, 1, 2]"))
	it := firstIssue(t, err)
	if it.Code != ys.CodeShapeMismatch || it.Message != "node shape mismatch: expected 2 elements, got 3" {
		t.Fatalf("unexpected issue: %+v", it)
	}

	_, err = c.Decode(ctx, node(t, "[a, x]"))
	if it := firstIssue(t, err); it.Path != "/1" {
		t.Fatalf("expected path /1, got %+v", it)
	}

	n, err := c.Encode(ctx, g.Pair[string, uint8]{First: "t", Second: 1})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := emit(t, n); got != "- t\n- 1\n" {
		t.Fatalf("unexpected emit:\n%s", got)
	}
}

func TestTuple3(t *testing.T) {
	ctx := context.Background()
	c := g.Tuple3(g.String(), g.Int[int](), g.Bool())
	v, err := c.Decode(ctx, node(t, "[a, 1, true]"))
	if err != nil || v != (g.Triple[string, int, bool]{First: "a", Second: 1, Third: true}) {
		t.Fatalf("decode: %+v %v", v, err)
	}
	if _, err := c.Decode(ctx, node(t, "[a, 1]")); firstIssue(t, err).Params["expected"] != 3 {
		t.Fatalf("expected arity 3 in params")
	}
}

func TestOptional(t *testing.T) {
	ctx := context.Background()
	c := g.Optional(g.String())

	for _, src := range []string{"~", "null"} {
		v, err := c.Decode(ctx, node(t, src))
		if err != nil || v != nil {
			t.Fatalf("%s: expected nil, got %v %v", src, v, err)
		}
	}
	if v, err := c.Decode(ctx, nil); err != nil || v != nil {
		t.Fatalf("absent: expected nil, got %v %v", v, err)
	}
	v, err := c.Decode(ctx, node(t, "90"))
	if err != nil || v == nil || *v != "90" {
		t.Fatalf("value: %v %v", v, err)
	}

	n, _ := c.Encode(ctx, nil)
	if n.Tag != "!!null" {
		t.Fatalf("nil should encode as null, got %+v", n)
	}
	s := "x"
	n, _ = c.Encode(ctx, &s)
	if n.Value != "x" || n.Kind != yaml.ScalarNode {
		t.Fatalf("value should encode unwrapped, got %+v", n)
	}
}
