// Package yamlstruct converts YAML documents to and from statically declared
// Go records.
//
// Package yamlstruct provides:
//
// - A node-level Codec[T] contract (Decode/Encode over *yaml.Node) shared by every codec
// - File, byte and environment-overlay loaders (FromYAML, FromYAMLBytes, FromYAMLEnv)
// - A stable error model via Issues (JSON Pointer, code, message, source position)
// - Presence metadata and swallowed field failures through FromYAMLWithMeta
// - A per-type registry so nested records resolve their codec by type
//
// Layout:
// - Codec builders live under dsl/, wire<->domain codecs under codec/.
// - jsonview/ projects a node tree to JSON (build tag yaml2json).
// - cmd/yamlstruct generates record codecs from struct tags.
//
// Typical usage:
//
//	var serverCodec = yamlstruct.MustRegister(dsl.ObjectOf[Server]().
//	    Field(dsl.Field("port", dsl.Int[int](), func(s *Server) *int { return &s.Port })).
//	    MustBind())
//
//	srv, err := yamlstruct.FromYAML[Server]("server.yaml")
//	text, err := yamlstruct.ToYAML(srv)
//
// Record decoding is lenient unless LoadOpt.Strict is set: a field that is
// missing or fails to decode keeps its default value.
package yamlstruct
