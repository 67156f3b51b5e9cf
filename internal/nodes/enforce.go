package nodes

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// DepthError reports a tree nested deeper than the configured limit.
type DepthError struct {
	Path  string
	Limit int
	Line  int
}

func (e DepthError) Error() string {
	return "max depth " + strconv.Itoa(e.Limit) + " exceeded at " + e.Path
}

// CheckDepth walks n and fails when containers nest deeper than max.
// A max of zero or less disables the check.
func CheckDepth(n *yaml.Node, max int) error {
	if max <= 0 {
		return nil
	}
	return checkDepth(n, 0, max, "")
}

func checkDepth(n *yaml.Node, depth, max int, path string) error {
	n = Resolve(n)
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.SequenceNode:
		depth++
		if depth > max {
			return DepthError{Path: pathOrRoot(path), Limit: max, Line: n.Line}
		}
		for i, c := range n.Content {
			if err := checkDepth(c, depth, max, path+"/"+strconv.Itoa(i)); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		depth++
		if depth > max {
			return DepthError{Path: pathOrRoot(path), Limit: max, Line: n.Line}
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := ""
			if k := Resolve(n.Content[i]); k != nil {
				key = k.Value
			}
			if err := checkDepth(n.Content[i+1], depth, max, path+"/"+key); err != nil {
				return err
			}
		}
	}
	return nil
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
