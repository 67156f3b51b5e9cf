//go:build !yaml2json

package jsonview

import "gopkg.in/yaml.v3"

// Enabled reports whether the projection is compiled in.
const Enabled = false

// Project returns ErrDisabled unless built with the yaml2json tag.
func Project(*yaml.Node) (any, error) { return nil, ErrDisabled }

// YAMLToJSON returns ErrDisabled unless built with the yaml2json tag.
func YAMLToJSON([]byte) ([]byte, error) { return nil, ErrDisabled }
