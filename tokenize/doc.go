// Package tokenize turns text into token sequences for the lcs package.
//
// A token is a string. Four granularities are supported:
//
//	Runes      one token per Unicode code point
//	Graphemes  one token per user-perceived character (extended grapheme cluster)
//	Words      whitespace-separated fields
//	Lines      newline-separated lines, terminators stripped
//
// Before splitting, text may be Unicode-normalized (NFC, NFD, NFKC, NFKD) and
// case-folded, so that "é" and "é", or "Straße" and "STRASSE", compare
// equal.
//
// Decode converts input in a legacy charset to UTF-8, and Sink interns tokens
// to small integers so long inputs compare by int instead of by string.
package tokenize
