package dsl_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	g "github.com/reoring/yamlstruct/dsl"
)

type color int

const (
	red color = iota + 1
	green
)

func (c color) String() string {
	switch c {
	case red:
		return "Red"
	case green:
		return "Green"
	}
	return "color(?)"
}

func TestEnum_Table(t *testing.T) {
	ctx := context.Background()
	c := g.Enum(g.EnumValue("Red", red), g.EnumValue("Green", green), g.EnumValue("Crimson", red))

	v, err := c.Decode(ctx, node(t, "Green"))
	if err != nil || v != green {
		t.Fatalf("decode: %v %v", v, err)
	}
	v, err = c.Decode(ctx, node(t, "Crimson"))
	if err != nil || v != red {
		t.Fatalf("alias name should decode: %v %v", v, err)
	}
	n, _ := c.Encode(ctx, red)
	if n.Value != "Red" {
		t.Fatalf("first declared name wins on encode, got %q", n.Value)
	}

	_, err = c.Decode(ctx, node(t, "green"))
	it := firstIssue(t, err)
	if it.Code != ys.CodeUnknownEnum || it.InputFragment != "green" {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if it.Hint != "one of Crimson, Green, Red" {
		t.Fatalf("unexpected hint: %q", it.Hint)
	}

}

func TestEnum_EncodeUndeclaredValue(t *testing.T) {
	var buf bytes.Buffer
	ctx := ys.WithLogger(context.Background(), log.NewLogfmtLogger(&buf))
	c := g.Enum(g.EnumValue("Red", red), g.EnumValue("Green", green))

	for _, v := range []color{0, 99} {
		n, err := c.Encode(ctx, v)
		if err != nil {
			t.Fatalf("encode %d: %v", v, err)
		}
		if n.Kind != yaml.ScalarNode || n.Value != "" {
			t.Fatalf("undeclared value should encode as empty string, got %+v", n)
		}
	}
	if !strings.Contains(buf.String(), "enum value has no declared name") {
		t.Fatalf("expected a debug record, got:\n%s", buf.String())
	}

	// the empty name does not decode, so a round trip falls back to the default
	if _, err := c.Decode(ctx, node(t, `""`)); firstIssue(t, err).Code != ys.CodeUnknownEnum {
		t.Fatalf("empty name must not decode")
	}
}

func TestEnum_Stringer(t *testing.T) {
	ctx := context.Background()
	c := g.EnumStringer(red, green)
	v, err := c.Decode(ctx, node(t, "Red"))
	if err != nil || v != red {
		t.Fatalf("decode: %v %v", v, err)
	}
	if _, err := c.Decode(ctx, node(t, "[Red]")); firstIssue(t, err).Code != ys.CodeShapeMismatch {
		t.Fatalf("expected shape_mismatch for a sequence")
	}
}

func TestEnumFunc(t *testing.T) {
	ctx := context.Background()
	errUnknown := errors.New("unknown color")
	strict := g.EnumFunc(
		func(s string) (color, error) {
			switch s {
			case "r":
				return red, nil
			case "g":
				return green, nil
			}
			return 0, errUnknown
		},
		func(c color) string { return c.String()[:1] },
	)
	v, err := strict.Decode(ctx, node(t, "g"))
	if err != nil || v != green {
		t.Fatalf("decode: %v %v", v, err)
	}
	_, err = strict.Decode(ctx, node(t, "b"))
	if it := firstIssue(t, err); it.Code != ys.CodeUnknownEnum || !errors.Is(it.Cause, errUnknown) {
		t.Fatalf("unexpected issue: %+v", it)
	}
	n, _ := strict.Encode(ctx, red)
	if n.Value != "R" {
		t.Fatalf("encode: %q", n.Value)
	}
}
