package yamlstruct

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/reoring/yamlstruct/internal/nodes"
)

// Source abstracts over where a document comes from. Name is used in error
// messages ("config.yaml not found or broken").
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// File returns a Source reading the file at path.
func File(path string) Source { return fileSource(path) }

// Bytes returns a Source over an in-memory document.
func Bytes(name string, b []byte) Source { return bytesSource{name: name, b: b} }

type fileSource string

func (f fileSource) Name() string { return string(f) }
func (f fileSource) Open() (io.ReadCloser, error) {
	r, err := os.Open(string(f))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", string(f))
	}
	return r, nil
}

type bytesSource struct {
	name string
	b    []byte
}

func (s bytesSource) Name() string { return s.name }
func (s bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.b)), nil
}

// LoadNode reads and parses the document behind src. An empty document
// yields an explicit null node. Failures are Issues carrying
// CodeSourceNotFound or CodeParseError.
func LoadNode(src Source, opts ...LoadOpt) (*yaml.Node, error) {
	opt := lastLoadOpt(opts)
	r, err := src.Open()
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeSourceNotFound, Message: src.Name() + " not found or broken", Cause: err}}
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeSourceNotFound, Message: src.Name() + " not found or broken", Cause: errors.Wrapf(err, "read %s", src.Name())}}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "on parsing " + src.Name() + ": " + err.Error(), Cause: err}}
	}
	root := nodes.Resolve(&doc)
	if root == nil || root.Kind == 0 {
		root = nodes.Null()
	}
	if err := nodes.CheckDepth(root, opt.MaxDepth); err != nil {
		var de nodes.DepthError
		errors.As(err, &de)
		return nil, Issues{{Path: de.Path, Code: CodeParseError, Message: "on parsing " + src.Name() + ": " + err.Error(), Line: de.Line, Cause: err}}
	}
	return root, nil
}
