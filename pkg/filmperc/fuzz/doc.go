// Package fuzz scores the similarity of two strings on a 0-100 scale.
//
// Ratio is the normalized insertion/deletion similarity 2*LCS/(|a|+|b|),
// computed on runes. PartialRatio slides the shorter string over the longer
// one, including windows cut short at its end, and keeps the best window.
// TokenSortRatio ignores word order, punctuation and non-ASCII characters by
// comparing the alphabetically sorted word lists.
package fuzz
