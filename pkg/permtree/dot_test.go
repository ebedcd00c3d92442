package permtree

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	dot := New([]Symbol("abc")).ToDOT()

	if !strings.HasPrefix(dot, "digraph PermTree {") {
		t.Error("ToDOT() should start with 'digraph PermTree {'")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("ToDOT() should end with '}'")
	}

	expected := []string{
		"rankdir=TB",
		"arrowhead=none",
		`label="∅"`,
		`label="c #1"`,
		`label="a #6"`,
	}
	for _, exp := range expected {
		if !strings.Contains(dot, exp) {
			t.Errorf("ToDOT() missing %q", exp)
		}
	}

	// 15 nodes below the root, one edge each.
	if got := strings.Count(dot, " -> "); got != 15 {
		t.Errorf("ToDOT() has %d edges, want 15", got)
	}
	if got := strings.Count(dot, "rounded"); got != 6 {
		t.Errorf("ToDOT() has %d leaves, want 6", got)
	}
}

func TestToDOTEmptyTree(t *testing.T) {
	dot := New(nil).ToDOT()

	if !strings.Contains(dot, "digraph PermTree {") {
		t.Error("ToDOT() should produce valid DOT for an empty tree")
	}
	if strings.Contains(dot, "->") {
		t.Error("empty tree should have no edges")
	}
}
