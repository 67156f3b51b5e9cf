package dsl

import (
	"context"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

type objectCodec[T any] struct {
	defaults func(*T)
	fields   []FieldDef[T]
}

// defaulter is implemented by codecs that know the value an absent key
// stands for. ok is false when the codec has no opinion.
type defaulter[T any] interface {
	defaultValue() (v T, ok bool)
}

// defaultValue builds the record an absent or null node decodes to: nested
// record fields get their own defaults first, then Defaults runs and may
// override them.
func (o *objectCodec[T]) defaultValue() (T, bool) {
	var rec T
	for _, f := range o.fields {
		if f.nested != nil {
			f.nested(&rec)
		}
	}
	if o.defaults != nil {
		o.defaults(&rec)
	}
	return rec, true
}

type fieldState uint8

const (
	fieldDecoded fieldState = iota
	fieldAbsent
	fieldFailed
)

// fieldResult is the outcome of decoding one field; the record loop decides
// from it whether to keep the default or abort.
type fieldResult struct {
	state fieldState
	null  bool
	err   error
}

func (o *objectCodec[T]) Decode(ctx context.Context, n *yaml.Node) (T, error) {
	rec, _ := o.defaultValue()
	switch nodes.KindOf(n) {
	case nodes.KindMap:
		n = nodes.Resolve(n)
	case nodes.KindAbsent, nodes.KindNull:
		n = nil
	default:
		var zero T
		return zero, ys.ShapeMismatch(nodes.Resolve(n), nodes.KindMap)
	}

	strict := ys.IsStrict(ctx)
	logger := ys.LoggerFrom(ctx)
	var fatal ys.Issues
	for _, f := range o.fields {
		fctx := ys.WithSegment(ctx, f.name)
		res := decodeField(fctx, f, n, &rec)
		ys.MarkPresence(fctx, res.presence())
		if res.state == fieldDecoded {
			continue
		}
		if strict && !f.optional {
			fatal = append(fatal, ys.ToIssues(ys.PrefixPath(res.failure(), f.name), ys.CodeParseError)...)
			continue
		}
		if res.state == fieldFailed {
			level.Debug(logger).Log("msg", "field decode failed, keeping default", "field", ys.PathFrom(fctx), "code", ys.ToIssues(res.err, ys.CodeParseError)[0].Code, "err", res.err)
			ys.ReportSwallowed(fctx, res.err)
		}
	}
	if len(fatal) > 0 {
		var zero T
		return zero, fatal
	}
	return rec, nil
}

func decodeField[T any](ctx context.Context, f FieldDef[T], m *yaml.Node, rec *T) fieldResult {
	var child *yaml.Node
	if m != nil {
		child = nodes.Lookup(m, f.name)
	}
	if child == nil {
		return fieldResult{state: fieldAbsent}
	}
	res := fieldResult{null: nodes.IsNull(child)}
	if err := f.decode(ctx, child, rec); err != nil {
		res.state, res.err = fieldFailed, err
	}
	return res
}

func (r fieldResult) presence() ys.Presence {
	switch r.state {
	case fieldAbsent:
		return ys.PresenceDefaultApplied
	case fieldFailed:
		p := ys.PresenceSeen | ys.PresenceFailed | ys.PresenceDefaultApplied
		if r.null {
			p |= ys.PresenceWasNull
		}
		return p
	}
	if r.null {
		return ys.PresenceSeen | ys.PresenceWasNull
	}
	return ys.PresenceSeen
}

// failure returns the issue that aborts a strict decode.
func (r fieldResult) failure() error {
	if r.state == fieldAbsent {
		return ys.IssueAt(nil, ys.CodeRequired, "")
	}
	return r.err
}

func (o *objectCodec[T]) Encode(ctx context.Context, v T) (*yaml.Node, error) {
	out := nodes.Map()
	for _, f := range o.fields {
		n, err := f.encode(ctx, &v)
		if err != nil {
			return nil, ys.PrefixPath(err, f.name)
		}
		nodes.Append(out, f.name, n)
	}
	return out, nil
}
