package yamlstruct

import (
	"strings"

	"github.com/go-kit/log"
)

// LoadOpt configures the FromYAML family. When several are passed the last
// one wins.
type LoadOpt struct {
	// Strict disables leniency for non-optional record fields.
	Strict bool
	// Logger receives debug records for swallowed field failures and
	// environment overrides. nil means no logging.
	Logger log.Logger
	// MaxDepth rejects documents nested deeper than this (0 = unlimited).
	MaxDepth int
	// KeyCase maps environment variable suffixes to field names.
	KeyCase KeyCase
}

// EmitOpt configures ToYAML.
type EmitOpt struct {
	// Indent is the number of spaces per nesting level (default 2).
	Indent int
}

// KeyCase selects how an environment variable name suffix becomes a
// top-level document key.
type KeyCase int

const (
	KeyLower KeyCase = iota // "PREFIX_DEFAULT_STR" -> "default_str"
	KeyUpper                // "PREFIX_default_str" -> "DEFAULT_STR"
	KeyAsIs                 // suffix used verbatim
)

func (k KeyCase) apply(s string) string {
	switch k {
	case KeyUpper:
		return strings.ToUpper(s)
	case KeyAsIs:
		return s
	default:
		return strings.ToLower(s)
	}
}

func lastLoadOpt(opts []LoadOpt) LoadOpt {
	if len(opts) == 0 {
		return LoadOpt{}
	}
	return opts[len(opts)-1]
}
