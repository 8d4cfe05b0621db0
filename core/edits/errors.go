// core/edits/errors.go
package edits

import (
	"fmt"
	"math"
)

// LengthMismatchError reports two lengths that must agree but do not:
// the rows of an expanded alignment, or a sequence and the number of
// symbols an edit sequence consumes from it.
type LengthMismatchError struct {
	What string // "rows", "sequence A", "sequence B"
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	if e.What == "rows" {
		return fmt.Sprintf("edits: row lengths differ (%d vs %d)", e.Want, e.Got)
	}
	return fmt.Sprintf("edits: %s has %d symbols but the edit sequence consumes %d", e.What, e.Got, e.Want)
}

// InvalidAlignmentError reports a column that is a gap in both rows. When
// Seq is set, the gap came from that ungapped input sequence instead and
// Column is the position of the operation that would have copied it.
type InvalidAlignmentError struct {
	Column int
	Seq    string
}

func (e *InvalidAlignmentError) Error() string {
	if e.Seq != "" {
		return fmt.Sprintf("edits: sequence %s holds a gap symbol at operation %d", e.Seq, e.Column)
	}
	return fmt.Sprintf("edits: column %d is a gap in both rows", e.Column)
}

// EditSequenceExhaustedError reports an operation that needs a symbol from a
// sequence whose cursor has already reached its end.
type EditSequenceExhaustedError struct {
	Index int    // position of the operation in the edit sequence
	Op    Op     // the operation that could not be satisfied
	Seq   string // "A" or "B"
	Len   int    // length of the exhausted sequence
}

func (e *EditSequenceExhaustedError) Error() string {
	return fmt.Sprintf("edits: op %s at %d needs a symbol from sequence %s, which is exhausted after %d", e.Op, e.Index, e.Seq, e.Len)
}

// AnchorOutOfRangeError reports a reference window that does not fit inside
// the reference.
type AnchorOutOfRangeError struct {
	Anchor int
	Width  int
	RefLen int
}

func (e *AnchorOutOfRangeError) Error() string {
	if e.Anchor > math.MaxInt-e.Width {
		return fmt.Sprintf("edits: window of width %d at %d outside reference of length %d", e.Width, e.Anchor, e.RefLen)
	}
	return fmt.Sprintf("edits: window [%d,%d) outside reference of length %d", e.Anchor, e.Anchor+e.Width, e.RefLen)
}

// UnknownOperationError reports a symbol outside {M, I, D}.
type UnknownOperationError struct {
	Index  int
	Symbol byte
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("edits: unknown operation %q at %d", e.Symbol, e.Index)
}

// CigarSyntaxError reports a malformed run-length CIGAR string.
type CigarSyntaxError struct {
	Index  int
	Reason string
}

func (e *CigarSyntaxError) Error() string {
	return fmt.Sprintf("edits: bad cigar at %d: %s", e.Index, e.Reason)
}
