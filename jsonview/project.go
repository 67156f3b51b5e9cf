//go:build yaml2json

package jsonview

import (
	"math"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/reoring/yamlstruct/internal/nodes"
)

// Enabled reports whether the projection is compiled in.
const Enabled = true

// Project converts n into nil, bool, int64, float64, string, []any or
// map[string]any. Scalars are tried as integer, then float, then bool, and
// otherwise kept as strings, regardless of their YAML tag.
func Project(n *yaml.Node) (any, error) {
	n = nodes.Resolve(n)
	switch nodes.KindOf(n) {
	case nodes.KindAbsent, nodes.KindNull:
		return nil, nil
	case nodes.KindSequence:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := Project(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case nodes.KindMap:
		out := make(map[string]any, len(n.Content)/2)
		err := nodes.Pairs(n, func(k, v *yaml.Node) error {
			pv, err := Project(v)
			if err != nil {
				return err
			}
			out[nodes.Resolve(k).Value] = pv
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return projectScalar(n.Value), nil
}

func projectScalar(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	switch {
	case strings.EqualFold(s, "true"):
		return true
	case strings.EqualFold(s, "false"):
		return false
	}
	return s
}

// YAMLToJSON parses YAML text and returns its JSON projection.
func YAMLToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "jsonview: parse yaml")
	}
	v, err := Project(&doc)
	if err != nil {
		return nil, err
	}
	out, err := j.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "jsonview: marshal json")
	}
	return out, nil
}
