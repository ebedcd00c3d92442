// Package bench measures the two permutation lookup strategies against each
// other across a range of alphabet sizes.
//
// For every size n in [MinN, MaxN] the harness builds the tree for the first
// n lowercase letters, times one full enumeration, then draws Samples random
// ranks in [1, n!] and times both lookups for each one. The two results are
// compared on every sample; any disagreement is counted in Row.Mismatches.
//
// The harness treats pkg/permtree as a black box. Randomness comes from a
// seeded PCG source so that a report can be reproduced from its Config.
//
// Reports can be encoded as plain space-separated "n enum lookup1 lookup2"
// rows, as CSV, JSON, or YAML, and persisted in a cache.Cache through a Store.
package bench
