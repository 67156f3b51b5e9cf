package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Collect parses the non-test Go files in dir and describes the named struct
// types. Keys come from `yaml:"name"` tags; untagged fields use the
// lower-cased field name, and `yaml:"-"` or unexported fields are skipped.
func Collect(dir string, typeNames []string) (File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return File{}, err
	}
	fset := token.NewFileSet()
	var files []*ast.File
	for _, p := range paths {
		if strings.HasSuffix(p, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, p, nil, parser.SkipObjectResolution)
		if err != nil {
			return File{}, errors.Wrapf(err, "parse %s", p)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return File{}, errors.Errorf("no Go files in %s", dir)
	}

	out := File{Package: files[0].Name.Name}
	for _, name := range typeNames {
		st := findStruct(files, name)
		if st == nil {
			return File{}, errors.Errorf("struct type %s not found in %s", name, dir)
		}
		rec := Record{Name: name, Defaults: hasDefaultsMethod(files, name)}
		for _, field := range st.Fields.List {
			key, ok := fieldKey(field)
			if !ok {
				continue
			}
			expr, imps, err := CodecExpr(field.Type)
			if err != nil {
				return File{}, errors.Wrapf(err, "%s.%s", name, field.Names[0].Name)
			}
			out.Imports = append(out.Imports, imps...)
			rec.Fields = append(rec.Fields, Field{
				Key:    key,
				GoName: field.Names[0].Name,
				GoType: types.ExprString(field.Type),
				Codec:  expr,
			})
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

func findStruct(files []*ast.File, name string) *ast.StructType {
	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name == nil || ts.Name.Name != name {
					continue
				}
				if st, ok := ts.Type.(*ast.StructType); ok && st.Fields != nil {
					return st
				}
			}
		}
	}
	return nil
}

func hasDefaultsMethod(files []*ast.File, name string) bool {
	for _, f := range files {
		for _, decl := range f.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Recv == nil || len(fd.Recv.List) != 1 || fd.Name.Name != "Defaults" {
				continue
			}
			if star, ok := fd.Recv.List[0].Type.(*ast.StarExpr); ok {
				if id, ok := star.X.(*ast.Ident); ok && id.Name == name {
					return true
				}
			}
		}
	}
	return false
}

// fieldKey reports the YAML key of a named, exported field.
func fieldKey(field *ast.Field) (string, bool) {
	// embedded and multi-name fields are not supported
	if len(field.Names) != 1 || !field.Names[0].IsExported() {
		return "", false
	}
	goName := field.Names[0].Name
	if field.Tag != nil {
		tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		if y, ok := tag.Lookup("yaml"); ok {
			name, _, _ := strings.Cut(y, ",")
			switch name {
			case "-":
				return "", false
			case "":
			default:
				return name, true
			}
		}
	}
	return strings.ToLower(goName), true
}
