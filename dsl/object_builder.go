package dsl

import (
	"context"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
)

// FieldDef describes one record field: its key, how to decode it into the
// record and how to encode it back. Build one with Field.
type FieldDef[T any] struct {
	name     string
	optional bool
	decode   func(ctx context.Context, n *yaml.Node, rec *T) error
	encode   func(ctx context.Context, rec *T) (*yaml.Node, error)
	// nested stores the nested record defaults; nil for non-record fields.
	nested  func(rec *T)
	invalid string
}

// Name returns the field's key.
func (f FieldDef[T]) Name() string { return f.name }

// Field declares the record field name of T, converted with c and reached
// through ref. ref must return a pointer into the record it receives.
func Field[T, F any](name string, c ys.Codec[F], ref func(*T) *F) FieldDef[T] {
	fd := FieldDef[T]{name: name}
	switch {
	case name == "":
		fd.invalid = "empty field name"
		return fd
	case c == nil:
		fd.invalid = "nil codec for field " + name
		return fd
	case ref == nil:
		fd.invalid = "nil accessor for field " + name
		return fd
	}
	_, fd.optional = c.(optionalMarker)
	if d, ok := c.(defaulter[F]); ok {
		fd.nested = func(rec *T) {
			if v, ok := d.defaultValue(); ok {
				*ref(rec) = v
			}
		}
	}
	fd.decode = func(ctx context.Context, n *yaml.Node, rec *T) error {
		v, err := c.Decode(ctx, n)
		if err != nil {
			return err
		}
		*ref(rec) = v
		return nil
	}
	fd.encode = func(ctx context.Context, rec *T) (*yaml.Node, error) {
		return c.Encode(ctx, *ref(rec))
	}
	return fd
}

// ObjectBuilder collects the field declarations of record type T.
type ObjectBuilder[T any] struct {
	defaults func(*T)
	fields   []FieldDef[T]
}

// ObjectOf starts a record declaration for T.
func ObjectOf[T any]() *ObjectBuilder[T] { return &ObjectBuilder[T]{} }

// Defaults sets the constructor applied to a zero T before decoding; fields
// that are absent or fail to decode keep what it sets.
func (b *ObjectBuilder[T]) Defaults(fn func(*T)) *ObjectBuilder[T] {
	b.defaults = fn
	return b
}

// Field appends field declarations in order. Declaration order is the
// decode order and the key order of encoded output.
func (b *ObjectBuilder[T]) Field(defs ...FieldDef[T]) *ObjectBuilder[T] {
	b.fields = append(b.fields, defs...)
	return b
}

// Bind validates the declaration and returns the record codec.
func (b *ObjectBuilder[T]) Bind() (ys.Codec[T], error) {
	var iss ys.Issues
	seen := make(map[string]struct{}, len(b.fields))
	for _, f := range b.fields {
		if f.invalid == "" && f.decode == nil {
			f.invalid = "uninitialized field declaration"
		}
		if f.invalid != "" {
			iss = ys.AppendIssues(iss, invalidSchema(b, f.invalid))
			continue
		}
		if _, dup := seen[f.name]; dup {
			iss = ys.AppendIssues(iss, invalidSchema(b, "duplicate field "+f.name))
			continue
		}
		seen[f.name] = struct{}{}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	fields := make([]FieldDef[T], len(b.fields))
	copy(fields, b.fields)
	return &objectCodec[T]{defaults: b.defaults, fields: fields}, nil
}

// MustBind is Bind that panics on an invalid declaration.
func (b *ObjectBuilder[T]) MustBind() ys.Codec[T] {
	c, err := b.Bind()
	if err != nil {
		panic(err)
	}
	return c
}

func invalidSchema[T any](_ *ObjectBuilder[T], msg string) ys.Issue {
	return ys.IssueAt(nil, ys.CodeInvalidSchema, fmt.Sprintf("%s: %s", reflect.TypeFor[T](), msg))[0]
}
