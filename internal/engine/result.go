// internal/engine/result.go
package engine

import "alnedit-core/records"

// Result is the outcome of one job.
type Result struct {
	Job records.Job

	// Ungapped sequences. For local/distance jobs SeqB is the reference
	// window the edits span, not the whole reference.
	SeqA string
	SeqB string

	RefID string // set when the job named a FASTA record

	Edits string // one letter per op

	// Expanded rows; HasRows is false for distance jobs run without NeedRows.
	RowA    string
	RowB    string
	HasRows bool

	Columns  int // alignment length
	Distance int // columns whose rows differ

	Err error
}

// OK reports whether the job succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Identity is the fraction of identical columns, 0 for an empty alignment.
func (r Result) Identity() float64 {
	if r.Columns == 0 {
		return 0
	}
	return float64(r.Columns-r.Distance) / float64(r.Columns)
}
