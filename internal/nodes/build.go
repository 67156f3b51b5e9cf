package nodes

import "gopkg.in/yaml.v3"

// Null returns an explicit null scalar.
func Null() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// Str returns a string scalar.
func Str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// Scalar returns a scalar with an explicit tag such as "!!int".
func Scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// Seq returns a block sequence holding items.
func Seq(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

// Map returns an empty mapping node.
func Map() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// Append adds key/value to mapping node m without checking for duplicates.
func Append(m *yaml.Node, key string, v *yaml.Node) {
	m.Content = append(m.Content, Str(key), v)
}

// AppendNode adds a pre-built key node and value to mapping node m.
func AppendNode(m *yaml.Node, k, v *yaml.Node) {
	m.Content = append(m.Content, k, v)
}

// Set stores v under key in mapping node m, replacing the value of every
// existing occurrence of key, or appending a new pair.
func Set(m *yaml.Node, key string, v *yaml.Node) {
	replaced := false
	for i := 0; i+1 < len(m.Content); i += 2 {
		if k := Resolve(m.Content[i]); k != nil && k.Value == key {
			m.Content[i+1] = v
			replaced = true
		}
	}
	if !replaced {
		Append(m, key, v)
	}
}
