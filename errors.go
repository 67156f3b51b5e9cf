package yamlstruct

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/yamlstruct/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeSourceNotFound    = "source_not_found"
	CodeParseError        = "parse_error"
	CodeShapeMismatch     = "shape_mismatch"
	CodeScalarParse       = "scalar_parse"
	CodeUnknownEnum       = "unknown_enum"
	CodeNoMatchingVariant = "no_matching_variant"
	CodeRequired          = "required"
	CodeEncode            = "encode_error"
	CodeNoCodec           = "no_codec"
	CodeInvalidSchema     = "invalid_schema"
)

// Issue represents a single decode or encode failure.
type Issue struct {
	Path    string // JSON Pointer relative to the decoded root (for example: /account_info/tuple/1).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected shape, enum names, etc.
	Cause   error  // Optional: underlying error.
	// Line and Column locate the offending node in the source document (0 when unknown).
	Line   int
	Column int
	// InputFragment carries the offending scalar text when there is one.
	InputFragment string
	// Params carries structured parameters (e.g., {"expected":2, "got":3}).
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		msg := it.Message
		if msg == "" {
			msg = it.Code
		}
		if it.Path != "" && it.Path != "/" {
			fmt.Fprintf(b, "%s: %s", it.Path, msg)
		} else {
			b.WriteString(msg)
		}
		if it.InputFragment != "" {
			fmt.Fprintf(b, " (%q)", it.InputFragment)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is/As can see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ToIssues converts any error into Issues. Non-Issues errors, and Issues
// values that hold no issue at all, become a single issue with the given
// fallback code. The result of a non-nil err is never empty.
func ToIssues(err error, code string) Issues {
	if err == nil {
		return nil
	}
	iss, ok := AsIssues(err)
	if ok && len(iss) > 0 {
		return iss
	}
	msg := err.Error()
	if msg == "" {
		msg = i18n.T(code, nil)
	}
	return Issues{{Path: "/", Code: code, Message: msg, Cause: err}}
}
