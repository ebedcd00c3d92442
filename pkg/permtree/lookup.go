package permtree

import "slices"

// LookupByEnumeration returns the permutation at the 1-based rank by
// enumerating the whole tree and indexing into the result.
//
// It always pays the full O(N!) enumeration cost, regardless of rank.
// A nil Permutation is returned when rank is outside [1, N!].
func (t *Tree) LookupByEnumeration(rank int64) Permutation {
	all := t.Enumerate()
	if rank <= 0 || rank > int64(len(all)) {
		return nil
	}
	return all[rank-1]
}

// LookupByDirectRank returns the permutation at the 1-based rank without
// enumerating. The symbol pool is read from the root's children and no other
// part of the tree is visited.
//
// For every rank in [1, N!] the result equals LookupByEnumeration(rank).
func (t *Tree) LookupByDirectRank(rank int64) Permutation {
	return Unrank(t.pool(), rank)
}

// Rank returns the 1-based rank of p within the tree, or 0 if p is not a
// permutation of the tree's alphabet.
func (t *Tree) Rank(p Permutation) int64 {
	return Rank(t.pool(), p)
}

// Unrank decodes a 1-based rank into a permutation of sorted using the
// factorial number system. sorted must already be in ascending order; it is
// not modified.
//
// At each position i (counting down from N), (i-1)! permutations share the
// same leading symbol, so rank/(i-1)! selects the next symbol from the
// remaining pool and rank%(i-1)! carries into the next position.
//
// Unrank returns nil for rank <= 0, for rank > N!, and when N! overflows.
func Unrank(sorted []Symbol, rank int64) Permutation {
	if rank <= 0 {
		return nil
	}
	n := len(sorted)
	total := SafeFactorial(n)
	idx := rank - 1
	if total == -1 || idx >= total {
		return nil
	}

	pool := slices.Clone(sorted)
	out := make(Permutation, 0, n)
	for i := n; i >= 1; i-- {
		block := SafeFactorial(i - 1)
		if block <= 0 {
			return nil
		}
		sel := idx / block
		if sel >= int64(len(pool)) {
			return nil
		}
		out = append(out, pool[sel])
		idx %= block
		pool = slices.Delete(pool, int(sel), int(sel)+1)
	}

	if len(out) != n || n == 0 {
		return nil
	}
	return out
}

// Rank is the inverse of Unrank. It returns the 1-based rank of p among the
// permutations of sorted, or 0 if p is not a permutation of sorted.
//
// When sorted contains duplicates, the first matching position is chosen at
// each step, which yields the lowest of the equal ranks.
func Rank(sorted []Symbol, p Permutation) int64 {
	n := len(sorted)
	if n == 0 || len(p) != n || SafeFactorial(n) == -1 {
		return 0
	}

	pool := slices.Clone(sorted)
	var idx int64
	for i, s := range p {
		pos := slices.Index(pool, s)
		if pos < 0 {
			return 0
		}
		idx += int64(pos) * SafeFactorial(n-1-i)
		pool = slices.Delete(pool, pos, pos+1)
	}
	return idx + 1
}
