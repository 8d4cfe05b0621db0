// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"alnedit-core/records"
	"alnedit/internal/engine"
	"alnedit/pkg/api"
)

// ToAPIResult converts a domain Result to the stable wire schema (v1).
func ToAPIResult(r engine.Result) api.ResultV1 {
	v := api.ResultV1{
		ID:     r.Job.ID,
		Mode:   string(r.Job.Mode),
		Source: r.Job.Source,
		OK:     r.OK(),
		RefID:  r.RefID,
	}
	if r.Job.Mode == records.ModeLocal || r.Job.Mode == records.ModeDistance {
		a := r.Job.Anchor
		v.Anchor = &a
	}
	if !r.OK() {
		v.Error = r.Err.Error()
		return v
	}
	v.SeqA, v.SeqB = r.SeqA, r.SeqB
	v.Edits, v.Cigar = r.Edits, Cigar(r)
	if r.HasRows {
		v.RowA, v.RowB = r.RowA, r.RowB
	}
	v.Columns, v.Distance, v.Identity = r.Columns, r.Distance, r.Identity()
	return v
}

func toAPIResults(list []engine.Result) []api.ResultV1 {
	out := make([]api.ResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIResults(list))
}
