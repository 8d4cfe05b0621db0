// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one job.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	ID     string `json:"id"`
	Mode   string `json:"mode"` // "extract" | "align" | "local" | "distance"
	Source string `json:"source,omitempty"`
	OK     bool   `json:"ok"`

	SeqA   string `json:"seq_a"`
	SeqB   string `json:"seq_b"` // reference window for local/distance
	RefID  string `json:"ref_id,omitempty"`
	Anchor *int   `json:"anchor,omitempty"`

	Edits string `json:"edits"` // one letter per op, never run-length
	Cigar string `json:"cigar,omitempty"`

	RowA string `json:"row_a,omitempty"`
	RowB string `json:"row_b,omitempty"`

	Columns  int     `json:"columns"`
	Distance int     `json:"distance"`
	Identity float64 `json:"identity"`

	Error string `json:"error,omitempty"`
}
