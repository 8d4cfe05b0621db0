// core/edits/reconstruct.go
package edits

import "strings"

// Reconstruct expands ungapped sequences a and b into alignment rows using
// ops. It is the inverse of Extract.
//
// Each sequence has its own read cursor, advanced only by operations that
// consume from it. When ops is exhausted both cursors must sit at the end of
// their sequence. a and b must not contain Gap.
func Reconstruct(a, b, ops string) (Alignment, error) {
	var ra, rb strings.Builder
	ra.Grow(len(ops))
	rb.Grow(len(ops))

	ia, ib := 0, 0
	for k := 0; k < len(ops); k++ {
		op := Op(ops[k])
		if !op.Valid() {
			return Alignment{}, &UnknownOperationError{Index: k, Symbol: ops[k]}
		}
		if op.ConsumesA() && ia >= len(a) {
			return Alignment{}, &EditSequenceExhaustedError{Index: k, Op: op, Seq: "A", Len: len(a)}
		}
		if op.ConsumesB() && ib >= len(b) {
			return Alignment{}, &EditSequenceExhaustedError{Index: k, Op: op, Seq: "B", Len: len(b)}
		}
		if op.ConsumesA() && a[ia] == Gap {
			return Alignment{}, &InvalidAlignmentError{Column: k, Seq: "A"}
		}
		if op.ConsumesB() && b[ib] == Gap {
			return Alignment{}, &InvalidAlignmentError{Column: k, Seq: "B"}
		}
		switch op {
		case Match:
			ra.WriteByte(a[ia])
			rb.WriteByte(b[ib])
			ia++
			ib++
		case Insert:
			ra.WriteByte(Gap)
			rb.WriteByte(b[ib])
			ib++
		case Delete:
			ra.WriteByte(a[ia])
			rb.WriteByte(Gap)
			ia++
		}
	}

	if ia != len(a) {
		return Alignment{}, &LengthMismatchError{What: "sequence A", Want: ia, Got: len(a)}
	}
	if ib != len(b) {
		return Alignment{}, &LengthMismatchError{What: "sequence B", Want: ib, Got: len(b)}
	}
	return Alignment{RowA: ra.String(), RowB: rb.String()}, nil
}
