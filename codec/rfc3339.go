package codec

import (
	"time"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/dsl"
)

// TimeRFC3339 returns a codec between RFC 3339 strings and time.Time.
// Encoding normalizes to UTC.
func TimeRFC3339() ys.Codec[time.Time] {
	return named[string](Transform(dsl.String(), parseRFC3339, func(t time.Time) (string, error) {
		return formatRFC3339Canonical(t), nil
	}), "RFC3339 time")
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
