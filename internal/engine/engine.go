// internal/engine/engine.go
package engine

import (
	"fmt"

	"alnedit-core/edits"
	"alnedit-core/records"
)

// RefLookup resolves "@ID" reference columns.
type RefLookup interface {
	Lookup(id string) (string, bool)
}

// Config controls how jobs are interpreted.
type Config struct {
	Cigar    bool      // edit columns are run-length CIGAR
	NeedRows bool      // distance jobs also build the expanded rows
	Refs     RefLookup // may be nil when no reference was loaded
}

// Engine is stateless apart from its Config and safe for concurrent use.
type Engine struct{ cfg Config }

func New(c Config) *Engine { return &Engine{cfg: c} }

// Process runs the job's operation. Codec failures are returned in
// Result.Err; Process itself never panics on bad input.
func (e *Engine) Process(j records.Job) Result {
	r := Result{Job: j}
	var err error
	switch j.Mode {
	case records.ModeExtract:
		err = e.extract(j, &r)
	case records.ModeAlign:
		err = e.align(j, &r)
	case records.ModeLocal:
		err = e.local(j, &r)
	case records.ModeDistance:
		err = e.distance(j, &r)
	default:
		err = fmt.Errorf("unknown mode %q", j.Mode)
	}
	if err != nil {
		return Result{Job: j, RefID: r.RefID, Err: err}
	}
	return r
}

func (e *Engine) extract(j records.Job, r *Result) error {
	a, b, ops, err := edits.Extract(j.A, j.B)
	if err != nil {
		return err
	}
	r.SeqA, r.SeqB, r.Edits = a, b, ops
	return e.setRows(r, edits.Alignment{RowA: j.A, RowB: j.B})
}

func (e *Engine) align(j records.Job, r *Result) error {
	ops, err := e.ops(j)
	if err != nil {
		return err
	}
	aln, err := edits.Reconstruct(j.A, j.B, ops)
	if err != nil {
		return err
	}
	r.SeqA, r.SeqB, r.Edits = j.A, j.B, ops
	return e.setRows(r, aln)
}

func (e *Engine) local(j records.Job, r *Result) error {
	ops, win, err := e.window(j, r)
	if err != nil {
		return err
	}
	aln, err := edits.Reconstruct(j.A, win, ops)
	if err != nil {
		return err
	}
	r.SeqA, r.SeqB, r.Edits = j.A, win, ops
	return e.setRows(r, aln)
}

// distance counts differing columns; rows are kept only when NeedRows is set.
func (e *Engine) distance(j records.Job, r *Result) error {
	if e.cfg.NeedRows {
		return e.local(j, r)
	}
	ops, win, err := e.window(j, r)
	if err != nil {
		return err
	}
	aln, err := edits.Reconstruct(j.A, win, ops)
	if err != nil {
		return err
	}
	d, err := edits.Mismatches(aln)
	if err != nil {
		return err
	}
	r.SeqA, r.SeqB, r.Edits = j.A, win, ops
	r.Columns, r.Distance = aln.Len(), d
	return nil
}

// window resolves the job's reference and cuts the span the edits cover.
func (e *Engine) window(j records.Job, r *Result) (ops, win string, err error) {
	ops, ref, err := e.anchored(j, r)
	if err != nil {
		return "", "", err
	}
	win, err = edits.Window(ref, j.Anchor, ops)
	if err != nil {
		return "", "", err
	}
	return ops, win, nil
}

func (e *Engine) setRows(r *Result, aln edits.Alignment) error {
	d, err := edits.Mismatches(aln)
	if err != nil {
		return err
	}
	r.RowA, r.RowB, r.HasRows = aln.RowA, aln.RowB, true
	r.Columns, r.Distance = aln.Len(), d
	return nil
}

// ops returns the job's edit sequence in one-letter form.
func (e *Engine) ops(j records.Job) (string, error) {
	if !e.cfg.Cigar {
		return j.Edits, nil
	}
	return edits.Expand(j.Edits)
}

// anchored resolves the edit sequence and the reference of a local/distance job.
func (e *Engine) anchored(j records.Job, r *Result) (ops, ref string, err error) {
	ops, err = e.ops(j)
	if err != nil {
		return "", "", err
	}
	ref = j.B
	if id, ok := j.RefID(); ok {
		r.RefID = id
		if e.cfg.Refs == nil {
			return "", "", fmt.Errorf("reference %q requested but no --reference loaded", id)
		}
		s, found := e.cfg.Refs.Lookup(id)
		if !found {
			return "", "", fmt.Errorf("reference %q not found", id)
		}
		ref = s
	}
	return ops, ref, nil
}
