// Package pkg provides the libraries behind the permtree command.
//
// # Overview
//
// permtree builds the tree of all orderings of an alphabet and answers
// "which permutation sits at rank r?" in two ways: by enumerating the tree,
// and directly by decoding r in the factorial number system. The pkg
// directory is organized into:
//
//  1. [permtree] - Core algorithms (factorial, tree, enumeration, lookups)
//  2. [bench] - Timing harness comparing the two lookups, plus report storage
//  3. [api] - HTTP interface over the core algorithms
//  4. [cache] - Report store backends (file, Redis, null)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	alphabet string
//	     ↓
//	[permtree] package (sorted symbols → tree)
//	     ↓
//	Enumerate / LookupByEnumeration / LookupByDirectRank / Unrank
//	     ↓
//	CLI output, HTTP JSON, or [bench] report → [cache]
//
// # Quick Start
//
//	tree := permtree.New([]permtree.Symbol("cab"))
//	fmt.Println(tree.LookupByDirectRank(4)) // bca
//
// For alphabets too large to materialize:
//
//	p := permtree.Unrank([]permtree.Symbol("abcdefghijklmnopqrst"), 1_000_000)
package pkg
