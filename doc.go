// Package seqlath is a toolkit for comparing sequences by their longest
// common subsequences (LCS), from a bare length to every optimal solution.
//
// 🚀 What is seqlath?
//
//	A generic LCS library plus the plumbing around it:
//		• lcs: length, one solution, all distinct solutions, edit scripts, alignments
//		• tokenize: runes, grapheme clusters, words or lines, with Unicode normalization
//		• cmd/lcs: a command line front end with text, JSON and YAML output
//
// ✨ Why choose seqlath?
//
//   - Generic – elements of the two sequences may differ in type
//   - Pluggable counting – count lengths in int, uint64, *big.Int or your own domain
//   - Lazy – all solutions are produced one at a time by a restartable iterator
//
// Layout:
//
//	lcs/       — Sequence, Counter, ComputeLength, ComputeOne, EnumerateAll, EditScript, Align
//	tokenize/  — Split, Decode, Sink
//	cmd/lcs/   — the lcs command
//	examples/  — runnable scenarios
//
// Quick example:
//
//	A G C - C A
//	|   |   | |
//	A - C G C A
//
//	is the alignment induced by the LCS "ACCA" of AGCCA and ACGCA.
//
//	go get github.com/katalvlaran/seqlath/lcs
package seqlath
