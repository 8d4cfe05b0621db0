// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"alnedit-core/edits"
	"alnedit/internal/engine"
)

func field(s string) string {
	if s == "" {
		return Empty
	}
	return s
}

// Cigar is the run-length form of r's edits, or "" when r failed.
func Cigar(r engine.Result) string {
	if !r.OK() {
		return ""
	}
	c, err := edits.Compress(r.Edits)
	if err != nil {
		return ""
	}
	return c
}

// FormatRowTSV returns one TSV row (no trailing newline).
func FormatRowTSV(r engine.Result) string {
	if !r.OK() {
		msg := strings.NewReplacer("\t", " ", "\n", " ").Replace(r.Err.Error())
		return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
			field(r.Job.ID), r.Job.Mode, Empty, Empty, Empty, Empty, Empty, Empty, Empty, msg)
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\t%.4f\t%s",
		field(r.Job.ID), r.Job.Mode,
		field(r.SeqA), field(r.SeqB),
		field(r.Edits), field(Cigar(r)),
		r.Columns, r.Distance, r.Identity(), Empty,
	)
}
