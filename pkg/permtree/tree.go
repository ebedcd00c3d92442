package permtree

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// MaxTreeSize is the largest alphabet for which building a full tree is
// practical: 10 symbols already means 10! leaves and almost ten million nodes.
// New does not enforce it; the CLI, API and benchmark harness do.
const MaxTreeSize = 10

// Symbol is a single element of an alphabet.
type Symbol = rune

// Permutation is an ordered arrangement of every symbol in an alphabet.
// A nil Permutation is the "no result" value returned by out-of-range lookups.
type Permutation []Symbol

// String returns the symbols concatenated, e.g. "bca".
func (p Permutation) String() string {
	return string(p)
}

// Node is one choice of symbol at one depth of the tree.
// Children are sorted ascending by Data and are owned by the node.
type Node struct {
	Data     Symbol
	Children []*Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Tree is an immutable permutation tree. It is safe for concurrent readers.
type Tree struct {
	root     *Node
	alphabet []Symbol
	nodes    int
}

// New builds the full permutation tree for alphabet.
//
// The alphabet is copied and sorted; the caller's slice is not modified.
// An empty alphabet produces a root with no children. The tree has
// sum(N!/(N-d)!) nodes below the root, so New is only practical for small
// alphabets (about ten symbols).
func New(alphabet []Symbol) *Tree {
	sorted := slices.Clone(alphabet)
	slices.Sort(sorted)

	t := &Tree{
		root:     &Node{},
		alphabet: sorted,
	}

	avail := bitset.New(uint(len(sorted)))
	for i := range sorted {
		avail.Set(uint(i))
	}
	t.build(t.root, avail)
	return t
}

// build attaches one child per available position, in ascending position
// order. Because the alphabet is sorted, that is ascending symbol order.
func (t *Tree) build(parent *Node, avail *bitset.BitSet) {
	count := avail.Count()
	if count == 0 {
		return
	}
	parent.Children = make([]*Node, 0, count)
	for i, ok := avail.NextSet(0); ok; i, ok = avail.NextSet(i + 1) {
		child := &Node{Data: t.alphabet[i]}
		parent.Children = append(parent.Children, child)
		t.nodes++

		rest := avail.Clone()
		rest.Clear(i)
		t.build(child, rest)
	}
}

// Root returns the sentinel root node. Its Data is meaningless.
// Callers must treat the returned nodes as read-only.
func (t *Tree) Root() *Node {
	return t.root
}

// Alphabet returns a copy of the sorted alphabet the tree was built from.
func (t *Tree) Alphabet() []Symbol {
	return slices.Clone(t.alphabet)
}

// Size returns N, the number of symbols in the alphabet.
func (t *Tree) Size() int {
	return len(t.alphabet)
}

// NodeCount returns the number of nodes below the root.
func (t *Tree) NodeCount() int {
	return t.nodes
}

// Count returns N!, or -1 if it overflows an int64.
func (t *Tree) Count() int64 {
	return SafeFactorial(len(t.alphabet))
}

// pool returns the symbols of the root's children, i.e. the sorted alphabet
// as the tree sees it.
func (t *Tree) pool() []Symbol {
	out := make([]Symbol, len(t.root.Children))
	for i, c := range t.root.Children {
		out[i] = c.Data
	}
	return out
}
