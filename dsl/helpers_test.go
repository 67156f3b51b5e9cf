package dsl_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
)

func node(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	return &doc
}

func firstIssue(t *testing.T, err error) ys.Issue {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	iss, ok := ys.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	return iss[0]
}

func emit(t *testing.T, n *yaml.Node) string {
	t.Helper()
	s, err := ys.Emit(n)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	return s
}
