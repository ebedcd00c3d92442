// Package permtree materializes every permutation of a small ordered alphabet
// as a tree and retrieves the k-th permutation in two different ways.
//
// # Overview
//
// A permutation tree has one level per position. The root is a sentinel; its
// children are the alphabet's symbols in ascending order, and every node below
// it has one child per symbol not yet chosen on the path from the root. Each
// root-to-leaf path therefore spells exactly one permutation, and a depth-first
// walk visits them in lexicographic order:
//
//	          ∅
//	  ┌───────┼───────┐
//	  a       b       c
//	 / \     / \     / \
//	b   c   a   c   a   b
//	|   |   |   |   |   |
//	c   b   c   a   b   a
//
//	1   2   3   4   5   6      (1-based rank)
//
// # Retrieval Strategies
//
// Two lookups return the permutation at a given 1-based rank:
//
//   - [Tree.LookupByEnumeration]: enumerates all N! permutations, then indexes.
//     Always pays the full factorial cost; kept as the baseline.
//   - [Tree.LookupByDirectRank]: decodes the rank in the factorial number
//     system, choosing one child per level without touching sibling subtrees.
//
// Both strategies return identical permutations for every valid rank. Out of
// range ranks (≤ 0 or > N!) yield a nil [Permutation] rather than an error.
//
// # Overflow
//
// [SafeFactorial] returns -1 instead of a wrapped value when n! does not fit
// in an int64 (n > 20). Every caller that sizes a slice or bounds a rank with
// a factorial checks for that sentinel first.
//
// # Duplicate Symbols
//
// The tree tracks alphabet positions, not symbol values, so an alphabet with
// repeated symbols produces repeated paths. Both lookups index into the same
// duplicated order and continue to agree with each other.
//
// # Usage
//
//	tree := permtree.New([]permtree.Symbol("cab"))
//	tree.Enumerate()             // [abc acb bac bca cab cba]
//	tree.LookupByDirectRank(4)   // bca
//	permtree.SafeFactorial(21)   // -1
package permtree
