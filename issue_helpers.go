package yamlstruct

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/yamlstruct/i18n"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// IssueAt creates a single-issue error located at node n. The message comes
// from the current translator; detail, when non-empty, is appended to it.
func IssueAt(n *yaml.Node, code, detail string) Issues {
	it := Issue{Path: "/", Code: code, Message: i18n.T(code, nil)}
	if detail != "" {
		it.Message += ": " + detail
	}
	if n != nil {
		it.Line, it.Column = n.Line, n.Column
	}
	return Issues{it}
}

// ShapeMismatch reports that n is not of the expected node kind.
func ShapeMismatch(n *yaml.Node, expected nodes.Kind) Issues {
	got := nodes.KindOf(n)
	iss := IssueAt(n, CodeShapeMismatch, "expected "+expected.String()+", got "+got.String())
	iss[0].Hint = expected.String()
	iss[0].Params = map[string]any{"expected": expected.String(), "got": got.String()}
	return iss
}

// ScalarParse reports scalar text that does not convert to the target type.
func ScalarParse(n *yaml.Node, target string, cause error) Issues {
	iss := IssueAt(n, CodeScalarParse, "cannot convert to "+target)
	iss[0].Cause = cause
	if n != nil {
		iss[0].InputFragment = n.Value
	}
	return iss
}

// PrefixPath rebases the paths of all issues in err under seg. Errors that are
// not Issues are converted with CodeParseError first.
func PrefixPath(err error, seg string) error {
	if err == nil {
		return nil
	}
	iss := ToIssues(err, CodeParseError)
	base := "/" + escapePointer(seg)
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// escapePointer escapes a JSON Pointer reference token (RFC 6901).
func escapePointer(seg string) string {
	if !strings.ContainsAny(seg, "~/") {
		return seg
	}
	seg = strings.ReplaceAll(seg, "~", "~0")
	return strings.ReplaceAll(seg, "/", "~1")
}
