// core/edits/extract.go
package edits

import "strings"

// Extract splits an expanded alignment into its two ungapped sequences and
// the edit sequence describing it.
//
//	Extract("ACCACAGT-CATA", "A-CAGAGTACAAA")
//	  → "ACCACAGTCATA", "ACAGAGTACAAA", "MDMMMMMMIMMMM"
func Extract(rowA, rowB string) (a, b, ops string, err error) {
	if len(rowA) != len(rowB) {
		return "", "", "", &LengthMismatchError{What: "rows", Want: len(rowA), Got: len(rowB)}
	}
	if len(rowA) == 0 {
		return "", "", "", nil
	}

	var sa, sb, so strings.Builder
	sa.Grow(len(rowA))
	sb.Grow(len(rowB))
	so.Grow(len(rowA))

	for i := 0; i < len(rowA); i++ {
		ca, cb := rowA[i], rowB[i]
		switch {
		case ca == Gap && cb == Gap:
			return "", "", "", &InvalidAlignmentError{Column: i}
		case ca == Gap:
			so.WriteByte(byte(Insert))
			sb.WriteByte(cb)
		case cb == Gap:
			so.WriteByte(byte(Delete))
			sa.WriteByte(ca)
		default:
			so.WriteByte(byte(Match))
			sa.WriteByte(ca)
			sb.WriteByte(cb)
		}
	}
	return sa.String(), sb.String(), so.String(), nil
}
