package yamlstruct

import "context"

// Presence is the bit flag collected by WithMeta APIs for every record field.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Key appeared in the document.
	PresenceWasNull                             // Value was null.
	PresenceDefaultApplied                      // Default (or zero) value was kept.
	PresenceFailed                              // Value was present but did not decode.
)

// PresenceMap maps JSON Pointers of record fields to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the decoded value along with per-field metadata. Swallowed
// lists the field failures that leniency turned into defaults.
type Decoded[T any] struct {
	Value     T
	Presence  PresenceMap
	Swallowed Issues
}

// metaCollector accumulates presence for one decode call. A decode call is
// single-goroutine, so no locking is needed.
type metaCollector struct {
	presence  PresenceMap
	swallowed Issues
}

func withMeta(ctx context.Context, m *metaCollector) context.Context {
	return context.WithValue(ctx, _ctxKeyMeta, m)
}

// ScopeMeta starts a nested metadata scope for a decode whose outcome may be
// discarded, such as one variant alternative. Metadata recorded under the
// returned context reaches the enclosing scope only when commit is called.
func ScopeMeta(ctx context.Context) (scoped context.Context, commit func()) {
	parent, _ := ctx.Value(_ctxKeyMeta).(*metaCollector)
	if parent == nil {
		return ctx, func() {}
	}
	child := &metaCollector{presence: PresenceMap{}}
	return withMeta(ctx, child), func() {
		for p, flags := range child.presence {
			parent.presence[p] |= flags
		}
		parent.swallowed = append(parent.swallowed, child.swallowed...)
	}
}

// MarkPresence records p for the value at the current decode path when
// metadata collection is enabled.
func MarkPresence(ctx context.Context, p Presence) {
	m, _ := ctx.Value(_ctxKeyMeta).(*metaCollector)
	if m == nil {
		return
	}
	path := PathFrom(ctx)
	if path == "" {
		path = "/"
	}
	m.presence[path] |= p
}

// ReportSwallowed records a field failure that was replaced by a default.
// Issue paths are rebased onto the current decode path.
func ReportSwallowed(ctx context.Context, err error) {
	m, _ := ctx.Value(_ctxKeyMeta).(*metaCollector)
	if m == nil || err == nil {
		return
	}
	for _, it := range ToIssues(err, CodeParseError) {
		p := it.Path
		if p == "/" {
			p = ""
		}
		it.Path = PathFrom(ctx) + p
		m.swallowed = append(m.swallowed, it)
	}
}
