package yamlstruct

import (
	"bytes"
	"context"

	"gopkg.in/yaml.v3"
)

// FromYAML loads the file at source and decodes it with the codec registered
// for T. On failure the zero T is returned with an error that embeds source.
func FromYAML[T any](source string, opts ...LoadOpt) (T, error) {
	c, err := lookupOrIssue[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return FromYAMLWith(File(source), c, opts...)
}

// FromYAMLEnv is FromYAML with the environment overlay applied before decode:
// variables named prefix+field override top-level document values.
func FromYAMLEnv[T any](source, prefix string, opts ...LoadOpt) (T, error) {
	c, err := lookupOrIssue[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return fromSource(File(source), c, &prefix, nil, opts)
}

// FromYAMLBytes decodes an in-memory document with the codec registered for T.
func FromYAMLBytes[T any](data []byte, opts ...LoadOpt) (T, error) {
	c, err := lookupOrIssue[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return FromYAMLWith(Bytes("<bytes>", data), c, opts...)
}

// FromYAMLWith decodes src with an explicit codec.
func FromYAMLWith[T any](src Source, c Codec[T], opts ...LoadOpt) (T, error) {
	return fromSource(src, c, nil, nil, opts)
}

// FromYAMLWithMeta is FromYAMLWith that also reports, per record field, whether
// the key was seen, null, defaulted or failed, plus the swallowed failures.
// A non-nil prefix applies the environment overlay.
func FromYAMLWithMeta[T any](src Source, c Codec[T], prefix *string, opts ...LoadOpt) (Decoded[T], error) {
	m := &metaCollector{presence: PresenceMap{}}
	v, err := fromSource(src, c, prefix, m, opts)
	if err != nil {
		return Decoded[T]{}, err
	}
	return Decoded[T]{Value: v, Presence: m.presence, Swallowed: m.swallowed}, nil
}

func fromSource[T any](src Source, c Codec[T], prefix *string, meta *metaCollector, opts []LoadOpt) (T, error) {
	var zero T
	opt := lastLoadOpt(opts)
	root, err := LoadNode(src, opt)
	if err != nil {
		return zero, err
	}
	if prefix != nil {
		if root, err = OverlayEnv(root, *prefix, opt); err != nil {
			return zero, onParsing(src, err)
		}
	}

	ctx := decodeContext(opt)
	if meta != nil {
		ctx = withMeta(ctx, meta)
	}
	v, err := c.Decode(ctx, root)
	if err != nil {
		return zero, onParsing(src, err)
	}
	return v, nil
}

func decodeContext(opt LoadOpt) context.Context {
	ctx := WithStrict(context.Background(), opt.Strict)
	if opt.Logger != nil {
		ctx = WithLogger(ctx, opt.Logger)
	}
	return ctx
}

// onParsing prefixes issue messages with the source name.
func onParsing(src Source, err error) error {
	iss := ToIssues(err, CodeParseError)
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		it.Message = "on parsing " + src.Name() + ": " + it.Message
		out = append(out, it)
	}
	return out
}

// ToYAML encodes v with the codec registered for T and emits document text.
func ToYAML[T any](v T, opts ...EmitOpt) (string, error) {
	c, err := lookupOrIssue[T]()
	if err != nil {
		return "", err
	}
	return ToYAMLWith(v, c, opts...)
}

// ToYAMLWith encodes v with an explicit codec.
func ToYAMLWith[T any](v T, c Codec[T], opts ...EmitOpt) (string, error) {
	n, err := c.Encode(context.Background(), v)
	if err != nil {
		return "", ToIssues(err, CodeEncode)
	}
	return Emit(n, opts...)
}

// Emit renders a node tree as YAML text.
func Emit(n *yaml.Node, opts ...EmitOpt) (string, error) {
	indent := 2
	if len(opts) > 0 && opts[len(opts)-1].Indent > 0 {
		indent = opts[len(opts)-1].Indent
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(n); err != nil {
		return "", Issues{{Path: "/", Code: CodeEncode, Message: "Emitter to string: " + err.Error(), Cause: err}}
	}
	if err := enc.Close(); err != nil {
		return "", Issues{{Path: "/", Code: CodeEncode, Message: "Emitter to string: " + err.Error(), Cause: err}}
	}
	return buf.String(), nil
}
