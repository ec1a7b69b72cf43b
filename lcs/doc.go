// Package lcs computes Longest Common Subsequences (LCS) between two finite,
// randomly indexable sequences whose elements may be of different types.
//
// 🚀 What is an LCS?
//
//	The longest sequence of elements that appears, in the same relative
//	order, in both inputs (not necessarily contiguously). It is the
//	backbone of:
//	  • text and line diffs
//	  • DNA / protein similarity scoring
//	  • version-control merge tooling
//	  • fuzzy record matching
//
// ✨ Three modes over one dynamic program:
//   - ComputeLength — length only, rolling row of O(min(N,M)) memory, counted in
//     any ordered Counter domain (int, uint64, *big.Int or your own).
//   - ComputeOne    — one deterministic solution, backtracked through an N×M
//     direction matrix (ties prefer the left neighbour).
//   - EnumerateAll  — every distinct solution, produced lazily by a restartable
//     Enumerator. Each solution is reached by exactly one depth-first walk
//     (its rightmost embedding) kept on an explicit bifurcation stack.
//
// Also provided: EditScript (identical / delete / insert operations derived from
// matched index pairs) and Align (gap-filled alignment rows).
//
// ⚙️ Usage:
//
//	a, b := lcs.Runes("AGCCA"), lcs.Runes("ACGCA")
//	eq := lcs.Equal[rune]()
//
//	n, _ := lcs.Length(a, b, eq)        // 4
//	one, _ := lcs.ComputeOne(a, b, eq)  // []rune("ACCA")
//
//	all, _ := lcs.EnumerateAll(a, b, eq)
//	for sol := range all.All() {
//	  fmt.Println(string(sol))
//	}
//
// Performance:
//
//   - Time:   O(N·M) for every mode, plus O(L·(N+M)) per enumerated solution
//   - Memory: O(min(N,M)) (ComputeLength) or O(N·M) (ComputeOne, EnumerateAll)
//
// Concurrency: every call owns its tables. A Solutions value is read-only and
// may hand out Enumerators to several goroutines; a single Enumerator must not
// be shared.
package lcs
