package yamlstruct

import (
	"reflect"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]any{}
)

// Register makes c the codec used by FromYAML/ToYAML for T. Call it during
// program initialization; a later registration for the same T replaces the
// earlier one. nil codecs are ignored.
func Register[T any](c Codec[T]) {
	if c == nil {
		return
	}
	registryMu.Lock()
	registry[reflect.TypeFor[T]()] = c
	registryMu.Unlock()
}

// MustRegister registers c and returns it, so a package-level var can both
// declare and register a codec.
func MustRegister[T any](c Codec[T]) Codec[T] {
	if c == nil {
		panic("yamlstruct: nil codec for " + reflect.TypeFor[T]().String())
	}
	Register(c)
	return c
}

// Lookup returns the codec registered for T.
func Lookup[T any]() (Codec[T], bool) {
	registryMu.RLock()
	c, ok := registry[reflect.TypeFor[T]()]
	registryMu.RUnlock()
	if !ok {
		return nil, false
	}
	return c.(Codec[T]), true
}

func lookupOrIssue[T any]() (Codec[T], error) {
	c, ok := Lookup[T]()
	if !ok {
		return nil, IssueAt(nil, CodeNoCodec, reflect.TypeFor[T]().String())
	}
	return c, nil
}
