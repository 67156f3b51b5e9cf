package yamlstruct

import (
	"os"
	"sort"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	"github.com/reoring/yamlstruct/internal/nodes"
)

// OverlayEnv applies Overlay using the current process environment.
func OverlayEnv(root *yaml.Node, prefix string, opts ...LoadOpt) (*yaml.Node, error) {
	return Overlay(root, prefix, os.Environ(), opts...)
}

// Overlay injects every NAME=value entry of environ whose NAME starts with
// prefix into the top-level map of root. The key is NAME without the prefix,
// cased per LoadOpt.KeyCase; the value is re-parsed as a scalar or a flow
// sequence (`["a","b"]`). Existing keys are overwritten. Only top-level keys
// are reachable.
//
// A null root is replaced by a new map, which is why the (possibly new) root
// is returned. Any other non-map root fails with CodeShapeMismatch.
func Overlay(root *yaml.Node, prefix string, environ []string, opts ...LoadOpt) (*yaml.Node, error) {
	opt := lastLoadOpt(opts)
	logger := opt.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	switch nodes.KindOf(root) {
	case nodes.KindAbsent, nodes.KindNull:
		root = nodes.Map()
	case nodes.KindMap:
		root = nodes.Resolve(root)
	default:
		return nil, ShapeMismatch(root, nodes.KindMap)
	}

	for _, kv := range matchingEnv(environ, prefix) {
		key := opt.KeyCase.apply(kv[0])
		if key == "" {
			continue
		}
		nodes.Set(root, key, parseEnvValue(kv[1]))
		level.Debug(logger).Log("msg", "environment override", "key", key, "var", prefix+kv[0])
	}
	return root, nil
}

// matchingEnv returns [suffix, value] pairs sorted by variable name so that
// the outcome does not depend on environment ordering.
func matchingEnv(environ []string, prefix string) [][2]string {
	var out [][2]string
	for _, e := range environ {
		name, value, ok := strings.Cut(e, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		out = append(out, [2]string{strings.TrimPrefix(name, prefix), value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// parseEnvValue turns a raw variable value into a scalar or sequence node.
// Values that YAML reads as a map, or cannot read at all, stay plain strings.
func parseEnvValue(raw string) *yaml.Node {
	if strings.TrimSpace(raw) == "" {
		return nodes.Str(raw)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nodes.Str(raw)
	}
	n := nodes.Resolve(&doc)
	if n == nil {
		return nodes.Str(raw)
	}
	switch n.Kind {
	case yaml.ScalarNode, yaml.SequenceNode:
		return n
	}
	return nodes.Str(raw)
}
