package nodes

import "gopkg.in/yaml.v3"

// Kind is the shape of a node as seen by the codecs. Document and alias
// nodes never surface here; they are resolved first.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindScalar
	KindSequence
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	}
	return "<unknown kind>"
}

// maxAliasHops bounds alias chains; yaml.v3 already rejects self-referential
// anchors so this only guards hand-built trees.
const maxAliasHops = 64

// Resolve unwraps document nodes and follows aliases. It returns nil for an
// absent node or an empty document.
func Resolve(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && i < maxAliasHops; i++ {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return n
}

// KindOf classifies n.
func KindOf(n *yaml.Node) Kind {
	n = Resolve(n)
	if n == nil {
		return KindAbsent
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return KindNull
		}
		return KindScalar
	case yaml.SequenceNode:
		return KindSequence
	case yaml.MappingNode:
		return KindMap
	case 0:
		// zero value: what yaml.Unmarshal leaves behind for an empty input
		return KindNull
	}
	return KindAbsent
}

// IsNull reports whether n is absent or an explicit null.
func IsNull(n *yaml.Node) bool {
	k := KindOf(n)
	return k == KindAbsent || k == KindNull
}

// Lookup returns the value stored under key in mapping node m. When the key
// occurs more than once the last occurrence wins. Keys compare by text.
func Lookup(m *yaml.Node, key string) *yaml.Node {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	var found *yaml.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		if k := Resolve(m.Content[i]); k != nil && k.Value == key {
			found = m.Content[i+1]
		}
	}
	return found
}

// Pairs calls fn for every key/value pair of mapping node m in document order.
func Pairs(m *yaml.Node, fn func(k, v *yaml.Node) error) error {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if err := fn(m.Content[i], m.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// DuplicateKeys lists keys of m that occur more than once, in first-seen order.
func DuplicateKeys(m *yaml.Node) []string {
	seen := map[string]int{}
	var dups []string
	_ = Pairs(m, func(k, _ *yaml.Node) error {
		text := Resolve(k).Value
		seen[text]++
		if seen[text] == 2 {
			dups = append(dups, text)
		}
		return nil
	})
	return dups
}
