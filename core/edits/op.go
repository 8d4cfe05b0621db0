// core/edits/op.go
package edits

// Gap is the reserved marker for a missing symbol in an expanded row.
const Gap byte = '-'

// Op is a single edit operation, stored as its wire letter.
type Op byte

const (
	Match  Op = 'M'
	Insert Op = 'I'
	Delete Op = 'D'
)

func (o Op) String() string { return string(o) }

// Valid reports whether o is one of M, I, D.
func (o Op) Valid() bool { return o == Match || o == Insert || o == Delete }

// ConsumesA reports whether o takes a symbol from sequence A.
func (o Op) ConsumesA() bool { return o == Match || o == Delete }

// ConsumesB reports whether o takes a symbol from sequence B.
func (o Op) ConsumesB() bool { return o == Match || o == Insert }

// Counts tallies the operations of an edit sequence.
type Counts struct {
	Match  int
	Insert int
	Delete int
}

// LenA is the ungapped length of sequence A implied by the counts.
func (c Counts) LenA() int { return c.Match + c.Delete }

// LenB is the ungapped length of sequence B implied by the counts.
func (c Counts) LenB() int { return c.Match + c.Insert }

// Len is the number of alignment columns.
func (c Counts) Len() int { return c.Match + c.Insert + c.Delete }

// CountOps validates ops and tallies each operation.
func CountOps(ops string) (Counts, error) {
	var c Counts
	for i := 0; i < len(ops); i++ {
		switch Op(ops[i]) {
		case Match:
			c.Match++
		case Insert:
			c.Insert++
		case Delete:
			c.Delete++
		default:
			return Counts{}, &UnknownOperationError{Index: i, Symbol: ops[i]}
		}
	}
	return c, nil
}

// Alignment is an expanded pairwise alignment. RowA and RowB have equal length.
type Alignment struct {
	RowA string
	RowB string
}

// Len is the number of columns.
func (a Alignment) Len() int { return len(a.RowA) }
