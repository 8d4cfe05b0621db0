// core/records/records.go
package records

import "fmt"

// Mode selects which codec operation a job runs.
type Mode string

const (
	ModeExtract  Mode = "extract"
	ModeAlign    Mode = "align"
	ModeLocal    Mode = "local"
	ModeDistance Mode = "distance"
)

// Modes lists every mode in help-text order.
var Modes = []Mode{ModeExtract, ModeAlign, ModeLocal, ModeDistance}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want extract | align | local | distance)", s)
}

// Job is one unit of work read from a job file or built from flags.
//
// Field use by mode:
//
//	extract          A, B are the expanded rows
//	align            A, B are the ungapped sequences; Edits applies to them
//	local, distance  A is the read, B the reference (literal or "@ID"), Anchor the offset
type Job struct {
	Index  int    // 0-based position in the input stream
	ID     string
	Source string // "file:line" or "inline"
	Mode   Mode
	A      string
	B      string
	Anchor int
	Edits  string
}

// RefPrefix marks a reference column that names a FASTA record.
const RefPrefix = "@"

// RefID returns the FASTA record name when B refers to one.
func (j Job) RefID() (string, bool) {
	if len(j.B) > len(RefPrefix) && j.B[:len(RefPrefix)] == RefPrefix {
		return j.B[len(RefPrefix):], true
	}
	return "", false
}

// fieldCount is the number of TSV columns each mode expects.
func fieldCount(m Mode) int {
	switch m {
	case ModeExtract:
		return 3
	case ModeAlign:
		return 4
	default:
		return 5
	}
}
