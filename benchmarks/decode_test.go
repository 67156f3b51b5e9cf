package benchmarks_test

import (
	"bytes"
	"fmt"
	"testing"

	ys "github.com/reoring/yamlstruct"
	g "github.com/reoring/yamlstruct/dsl"
)

type host struct {
	Name   string
	Port   int
	Weight float64
	Tags   []string
	Labels map[string]string
}

type fleet struct {
	Region string
	Hosts  []host
}

var hostCodec = g.ObjectOf[host]().
	Defaults(func(h *host) { h.Port = 80 }).
	Field(
		g.Field("name", g.String(), func(h *host) *string { return &h.Name }),
		g.Field("port", g.Int[int](), func(h *host) *int { return &h.Port }),
		g.Field("weight", g.Float[float64](), func(h *host) *float64 { return &h.Weight }),
		g.Field("tags", g.Array(g.String()), func(h *host) *[]string { return &h.Tags }),
		g.Field("labels", g.Map(g.String(), g.String()), func(h *host) *map[string]string { return &h.Labels }),
	).
	MustBind()

var fleetCodec = ys.MustRegister(g.ObjectOf[fleet]().
	Field(
		g.Field("region", g.String(), func(f *fleet) *string { return &f.Region }),
		g.Field("hosts", g.Array(hostCodec), func(f *fleet) *[]host { return &f.Hosts }),
	).
	MustBind())

// generateFleetYAML returns a document with numHosts entries of the form:
// {name: h0, port: 8000, weight: 0.5, tags: [a, b], labels: {k0: v0, ...}}
func generateFleetYAML(numHosts, labels int) []byte {
	var buf bytes.Buffer
	buf.WriteString("region: ap-northeast-1\nhosts:\n")
	for i := 0; i < numHosts; i++ {
		fmt.Fprintf(&buf, "  - name: h%d\n    port: %d\n    weight: 0.5\n    tags: [a, b]\n    labels:\n", i, 8000+i)
		for j := 0; j < labels; j++ {
			fmt.Fprintf(&buf, "      k%d: v%d\n", j, j)
		}
	}
	return buf.Bytes()
}

func BenchmarkFromYAMLBytes(b *testing.B) {
	for _, n := range []int{1, 100, 1000} {
		data := generateFleetYAML(n, 4)
		b.Run(fmt.Sprintf("hosts=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				v, err := ys.FromYAMLBytes[fleet](data)
				if err != nil {
					b.Fatalf("decode failed: %v", err)
				}
				if len(v.Hosts) != n {
					b.Fatalf("hosts: got %d want %d", len(v.Hosts), n)
				}
			}
		})
	}
}

func BenchmarkFromYAMLBytes_Strict(b *testing.B) {
	data := generateFleetYAML(100, 4)
	opt := ys.LoadOpt{Strict: true}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ys.FromYAMLBytes[fleet](data, opt); err != nil {
			b.Fatalf("decode failed: %v", err)
		}
	}
}

func BenchmarkToYAML(b *testing.B) {
	v, err := ys.FromYAMLBytes[fleet](generateFleetYAML(100, 4))
	if err != nil {
		b.Fatalf("decode failed: %v", err)
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ys.ToYAML(v); err != nil {
			b.Fatalf("encode failed: %v", err)
		}
	}
}

func BenchmarkDecodeNode(b *testing.B) {
	root, err := ys.LoadNode(ys.Bytes("bench", generateFleetYAML(100, 4)))
	if err != nil {
		b.Fatalf("load failed: %v", err)
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ys.Decode(b.Context(), fleetCodec, root); err != nil {
			b.Fatalf("decode failed: %v", err)
		}
	}
}
