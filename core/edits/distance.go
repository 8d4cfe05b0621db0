// core/edits/distance.go
package edits

// Distance returns the number of columns in LocalAlign(p, x, anchor, ops)
// whose rows differ. A gap against a symbol counts, as does a substitution.
func Distance(p, x string, anchor int, ops string) (int, error) {
	aln, err := LocalAlign(p, x, anchor, ops)
	if err != nil {
		return 0, err
	}
	return Mismatches(aln)
}

// Mismatches counts the columns of aln whose two bytes differ.
func Mismatches(aln Alignment) (int, error) {
	if len(aln.RowA) != len(aln.RowB) {
		return 0, &LengthMismatchError{What: "rows", Want: len(aln.RowA), Got: len(aln.RowB)}
	}
	n := 0
	for i := 0; i < len(aln.RowA); i++ {
		if aln.RowA[i] != aln.RowB[i] {
			n++
		}
	}
	return n, nil
}

// Identity is the fraction of identical columns in aln, or 0 when aln is
// empty. Rows of unequal length are compared over the shorter one.
func Identity(aln Alignment) float64 {
	n := len(aln.RowA)
	if len(aln.RowB) < n {
		n = len(aln.RowB)
	}
	if n == 0 {
		return 0
	}
	same := 0
	for i := 0; i < n; i++ {
		if aln.RowA[i] == aln.RowB[i] {
			same++
		}
	}
	return float64(same) / float64(n)
}
