// Package edits translates between pairwise alignments and edit sequences.
//
// An expanded alignment is a pair of equal-length rows in which Gap marks the
// positions where one sequence has no symbol. An edit sequence encodes the same
// alignment as one operation letter per column:
//
//	M  both rows carry a symbol
//	I  row A has a gap (symbol consumed from B only)
//	D  row B has a gap (symbol consumed from A only)
//
// Every function is pure; nothing here holds state between calls.
package edits
