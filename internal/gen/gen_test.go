package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `package sample

import (
	"time"

	"github.com/reoring/yamlstruct/dsl"
)

type Config struct {
	Ch       rune
	Price    float64
	Count    int16 ` + "`yaml:\"count\"`" + `
	Vec      []string
	SetVec   map[uint8]struct{} ` + "`yaml:\"set_vec\"`" + `
	Map      map[string]string
	Opt      *string ` + "`yaml:\"default_opt,omitempty\"`" + `
	Tuple    dsl.Pair[string, uint8]
	Msec     time.Duration
	Account  AccountInfo ` + "`yaml:\"account_info\"`" + `
	Skipped  int ` + "`yaml:\"-\"`" + `
	internal int
}

type AccountInfo struct {
	Name string
}

func (c *Config) Defaults() { c.Price = 1 }
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.go"), []byte(sample), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample_test.go"), []byte("package sample\nthis is not go"), 0o600))
	return dir
}

func TestCollect(t *testing.T) {
	f, err := Collect(writeSample(t), []string{"Config"})
	require.NoError(t, err)
	require.Equal(t, "sample", f.Package)
	require.Len(t, f.Records, 1)

	rec := f.Records[0]
	require.True(t, rec.Defaults)
	got := map[string]string{}
	keys := make([]string, 0, len(rec.Fields))
	for _, fd := range rec.Fields {
		got[fd.Key] = fd.Codec
		keys = append(keys, fd.Key)
	}
	require.Equal(t, []string{"ch", "price", "count", "vec", "set_vec", "map", "default_opt", "tuple", "msec", "account_info"}, keys)
	require.Equal(t, "dsl.Char()", got["ch"])
	require.Equal(t, "dsl.Float[float64]()", got["price"])
	require.Equal(t, "dsl.Int[int16]()", got["count"])
	require.Equal(t, "dsl.Array(dsl.String())", got["vec"])
	require.Equal(t, "dsl.Set(dsl.Uint8())", got["set_vec"])
	require.Equal(t, "dsl.Map(dsl.String(), dsl.String())", got["map"])
	require.Equal(t, "dsl.Optional(dsl.String())", got["default_opt"])
	require.Equal(t, "dsl.Tuple2(dsl.String(), dsl.Uint8())", got["tuple"])
	require.Equal(t, "codec.Duration(time.Millisecond)", got["msec"])
	require.Equal(t, "dsl.Registered[AccountInfo]()", got["account_info"])
	require.Contains(t, f.Imports, codecImport)
}

func TestCollect_Errors(t *testing.T) {
	_, err := Collect(writeSample(t), []string{"Missing"})
	require.ErrorContains(t, err, "struct type Missing not found")

	_, err = Collect(t.TempDir(), []string{"X"})
	require.ErrorContains(t, err, "no Go files")
}

func TestRender(t *testing.T) {
	f, err := Collect(writeSample(t), []string{"Config", "AccountInfo"})
	require.NoError(t, err)
	out, err := Render(f)
	require.NoError(t, err)

	src := string(out)
	require.True(t, strings.HasPrefix(src, "// Code generated by yamlstruct gen; DO NOT EDIT."))
	require.Contains(t, src, "var configCodec = yamlstruct.MustRegister(dsl.ObjectOf[Config]().")
	require.Contains(t, src, "Defaults((*Config).Defaults).")
	require.Contains(t, src, `dsl.Field("set_vec", dsl.Set(dsl.Uint8()), func(v *Config) *map[uint8]struct{} { return &v.SetVec }),`)
	require.Contains(t, src, "var accountInfoCodec = ")

	_, err = parser.ParseFile(token.NewFileSet(), "", out, 0)
	require.NoError(t, err)
}

func TestRender_RequiresPackage(t *testing.T) {
	_, err := Render(File{})
	require.Error(t, err)
}

func TestCodecExpr_Unsupported(t *testing.T) {
	expr, err := parser.ParseExpr("chan int")
	require.NoError(t, err)
	_, _, err = CodecExpr(expr)
	require.ErrorContains(t, err, "unsupported field type chan int")

	expr, err = parser.ParseExpr("[4]int")
	require.NoError(t, err)
	_, _, err = CodecExpr(expr)
	require.Error(t, err)
}
