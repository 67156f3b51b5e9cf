// Package dsl declares codecs between YAML nodes and Go values.
//
// Overview
//   - Scalars: Int[T]/Uint8/Float[T]/Bool/String/StringOf[T]/Char.
//   - Composites: Optional (pointer), Array (slice), Set (map[E]struct{}), Map, Tuple2/Tuple3, OneOf+Variant.
//   - Enums: Enum(EnumValue(...)...) for explicit tables, EnumStringer for stringer-generated types, EnumFunc for custom conversions.
//   - Records: ObjectOf[T]().Defaults(fn).Field(Field(name, codec, ref)...).MustBind().
//   - Wiring: Lazy defers construction; Registered[T] resolves the codec registered with yamlstruct.Register.
//
// Record decoding is lenient: a missing key keeps the default set by
// Defaults (or the zero value), and a field that fails to decode does the
// same; the failure is logged at debug level and reported through
// yamlstruct.FromYAMLWithMeta. With LoadOpt{Strict: true} a missing or failing
// non-optional field fails the whole record instead.
//
// Example
//
//	type Server struct {
//	    Host  string
//	    Port  int
//	    Alias *string
//	}
//
//	var serverCodec = dsl.ObjectOf[Server]().
//	    Defaults(func(s *Server) { s.Port = 8080 }).
//	    Field(
//	        dsl.Field("host", dsl.String(), func(s *Server) *string { return &s.Host }),
//	        dsl.Field("port", dsl.Int[int](), func(s *Server) *int { return &s.Port }),
//	        dsl.Field("alias", dsl.Optional(dsl.String()), func(s *Server) **string { return &s.Alias }),
//	    ).
//	    MustBind()
//
//	func init() { yamlstruct.Register(serverCodec) }
//
// # Errors
//
// All codecs fail with yamlstruct.Issues. Issue paths are JSON Pointers
// relative to the value being decoded (for example /servers/0/port).
package dsl
