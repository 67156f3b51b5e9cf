package dsl

import (
	"context"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
)

// Lazy defers building a codec until first use. It lets package-level codec
// variables refer to each other regardless of initialization order.
func Lazy[T any](build func() ys.Codec[T]) ys.Codec[T] { return &lazyCodec[T]{build: build} }

type lazyCodec[T any] struct {
	once  sync.Once
	build func() ys.Codec[T]
	c     ys.Codec[T]
}

func (l *lazyCodec[T]) get() ys.Codec[T] {
	l.once.Do(func() { l.c = l.build() })
	return l.c
}

func (l *lazyCodec[T]) Decode(ctx context.Context, n *yaml.Node) (T, error) {
	return l.get().Decode(ctx, n)
}

func (l *lazyCodec[T]) Encode(ctx context.Context, v T) (*yaml.Node, error) {
	return l.get().Encode(ctx, v)
}

func (l *lazyCodec[T]) defaultValue() (T, bool) { return defaultOf(l.get()) }

// Registered resolves the codec registered for T at call time, so nested
// records can be declared before their codec is registered.
func Registered[T any]() ys.Codec[T] { return registeredCodec[T]{} }

type registeredCodec[T any] struct{}

func (registeredCodec[T]) lookup() (ys.Codec[T], error) {
	c, ok := ys.Lookup[T]()
	if !ok {
		return nil, ys.IssueAt(nil, ys.CodeNoCodec, reflect.TypeFor[T]().String())
	}
	return c, nil
}

func (r registeredCodec[T]) Decode(ctx context.Context, n *yaml.Node) (T, error) {
	c, err := r.lookup()
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Decode(ctx, n)
}

func (r registeredCodec[T]) defaultValue() (T, bool) {
	c, ok := ys.Lookup[T]()
	if !ok {
		var zero T
		return zero, false
	}
	return defaultOf(c)
}

// defaultOf asks c for its default value when it has one.
func defaultOf[T any](c ys.Codec[T]) (T, bool) {
	if d, ok := c.(defaulter[T]); ok {
		return d.defaultValue()
	}
	var zero T
	return zero, false
}

func (r registeredCodec[T]) Encode(ctx context.Context, v T) (*yaml.Node, error) {
	c, err := r.lookup()
	if err != nil {
		return nil, err
	}
	return c.Encode(ctx, v)
}
