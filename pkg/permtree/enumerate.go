package permtree

import (
	"iter"
	"slices"
)

// Enumerate returns every permutation in the tree in lexicographic order.
//
// The result has N! entries for an alphabet of N distinct symbols and is empty
// for an empty alphabet. Each entry is a separate allocation. Enumerate does
// not modify the tree, so repeated calls return identical results.
func (t *Tree) Enumerate() []Permutation {
	var out []Permutation
	if total := t.Count(); total > 0 {
		out = make([]Permutation, 0, total)
	}
	t.walk(func(p Permutation) bool {
		out = append(out, p)
		return true
	})
	return out
}

// All returns an iterator over (rank, permutation) pairs in the same order as
// Enumerate. Ranks start at 1. Iteration stops as soon as the consumer stops,
// so taking the first few permutations of a large tree is cheap.
func (t *Tree) All() iter.Seq2[int64, Permutation] {
	return func(yield func(int64, Permutation) bool) {
		var rank int64
		t.walk(func(p Permutation) bool {
			rank++
			return yield(rank, p)
		})
	}
}

// walk visits the tree depth-first, pushing each node's symbol onto a shared
// path buffer and popping it on the way back up. Leaves at depth N are passed
// to emit as copies. The root contributes no symbol. walk returns false if
// emit asked to stop.
func (t *Tree) walk(emit func(Permutation) bool) bool {
	want := len(t.alphabet)
	path := make([]Symbol, 0, want)

	var visit func(n *Node, depth int) bool
	visit = func(n *Node, depth int) bool {
		if depth > 0 {
			path = append(path, n.Data)
			defer func() { path = path[:len(path)-1] }()
		}
		if n.IsLeaf() {
			if depth > 0 && len(path) == want {
				return emit(slices.Clone(Permutation(path)))
			}
			return true
		}
		for _, c := range n.Children {
			if !visit(c, depth+1) {
				return false
			}
		}
		return true
	}
	return visit(t.root, 0)
}
