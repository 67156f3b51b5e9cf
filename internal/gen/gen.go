// Package gen renders record codec declarations for Go struct types.
package gen

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/types"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Field is one struct field bound to a YAML key.
type Field struct {
	Key    string // YAML key
	GoName string // struct field name
	GoType string // field type as written in source
	Codec  string // codec expression
}

// Record is one struct type to generate a codec for.
type Record struct {
	Name     string
	Defaults bool // the type has a pointer method named Defaults
	Fields   []Field
}

// File is the generated output unit.
type File struct {
	Package string
	Records []Record
	Imports []string
}

const (
	rootImport  = "github.com/reoring/yamlstruct"
	dslImport   = "github.com/reoring/yamlstruct/dsl"
	codecImport = "github.com/reoring/yamlstruct/codec"
)

var fileTmpl = template.Must(template.New("file").Funcs(template.FuncMap{
	"lowerFirst": lowerFirst,
}).Parse(`// Code generated by yamlstruct gen; DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)
{{range .Records}}
var {{lowerFirst .Name}}Codec = yamlstruct.MustRegister(dsl.ObjectOf[{{.Name}}]().
{{- if .Defaults}}
	Defaults((*{{.Name}}).Defaults).
{{- end}}
	Field(
{{- $rec := .Name}}
{{- range .Fields}}
		dsl.Field({{printf "%q" .Key}}, {{.Codec}}, func(v *{{$rec}}) *{{.GoType}} { return &v.{{.GoName}} }),
{{- end}}
	).
	MustBind())
{{end}}`))

// Render produces gofmt-ed source for f.
func Render(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, errors.New("gen: package name is required")
	}
	imports := map[string]struct{}{rootImport: {}, dslImport: {}}
	for _, imp := range f.Imports {
		imports[imp] = struct{}{}
	}
	f.Imports = f.Imports[:0:0]
	for imp := range imports {
		f.Imports = append(f.Imports, imp)
	}
	sort.Strings(f.Imports)

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, errors.Wrap(err, "gen: execute template")
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "gen: format\n%s\n", buf.String())
	}
	return out, nil
}

// CodecExpr maps a field type to a codec expression. It returns the extra
// imports the expression needs.
func CodecExpr(expr ast.Expr) (string, []string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return identCodec(t.Name), nil, nil
	case *ast.StarExpr:
		inner, imps, err := CodecExpr(t.X)
		if err != nil {
			return "", nil, err
		}
		return "dsl.Optional(" + inner + ")", imps, nil
	case *ast.ArrayType:
		if t.Len != nil {
			return "", nil, errors.Errorf("fixed-size arrays are not supported: %s", types.ExprString(t))
		}
		inner, imps, err := CodecExpr(t.Elt)
		if err != nil {
			return "", nil, err
		}
		return "dsl.Array(" + inner + ")", imps, nil
	case *ast.MapType:
		key, kimps, err := CodecExpr(t.Key)
		if err != nil {
			return "", nil, err
		}
		if st, ok := t.Value.(*ast.StructType); ok && (st.Fields == nil || len(st.Fields.List) == 0) {
			return "dsl.Set(" + key + ")", kimps, nil
		}
		val, vimps, err := CodecExpr(t.Value)
		if err != nil {
			return "", nil, err
		}
		return "dsl.Map(" + key + ", " + val + ")", append(kimps, vimps...), nil
	case *ast.SelectorExpr:
		switch types.ExprString(t) {
		case "time.Duration":
			return "codec.Duration(time.Millisecond)", []string{codecImport, "time"}, nil
		case "time.Time":
			return "codec.TimeRFC3339()", []string{codecImport, "time"}, nil
		}
	case *ast.IndexListExpr:
		return tupleCodec(t)
	}
	return "", nil, errors.Errorf("unsupported field type %s", types.ExprString(expr))
}

func identCodec(name string) string {
	switch name {
	case "string":
		return "dsl.String()"
	case "bool":
		return "dsl.Bool()"
	case "uint8", "byte":
		return "dsl.Uint8()"
	case "rune":
		return "dsl.Char()"
	case "int", "int8", "int16", "int32", "int64", "uint", "uint16", "uint32", "uint64":
		return "dsl.Int[" + name + "]()"
	case "float32", "float64":
		return "dsl.Float[" + name + "]()"
	}
	// A type of the same package: records and enums resolve through the registry.
	return "dsl.Registered[" + name + "]()"
}

func tupleCodec(t *ast.IndexListExpr) (string, []string, error) {
	ctor := ""
	switch types.ExprString(t.X) {
	case "dsl.Pair":
		ctor = "dsl.Tuple2"
	case "dsl.Triple":
		ctor = "dsl.Tuple3"
	default:
		return "", nil, errors.Errorf("unsupported generic type %s", types.ExprString(t))
	}
	parts := make([]string, 0, len(t.Indices))
	var imps []string
	for _, ix := range t.Indices {
		c, ci, err := CodecExpr(ix)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, c)
		imps = append(imps, ci...)
	}
	return ctor + "(" + strings.Join(parts, ", ") + ")", imps, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
