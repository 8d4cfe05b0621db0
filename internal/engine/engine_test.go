package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alnedit-core/edits"
	"alnedit-core/fasta"
	"alnedit-core/records"
)

func TestProcessExtract(t *testing.T) {
	eng := New(Config{})
	r := eng.Process(records.Job{ID: "x", Mode: records.ModeExtract, A: "ACCACAGT-CATA", B: "A-CAGAGTACAAA"})
	require.NoError(t, r.Err)
	assert.Equal(t, "ACCACAGTCATA", r.SeqA)
	assert.Equal(t, "ACAGAGTACAAA", r.SeqB)
	assert.Equal(t, "MDMMMMMMIMMMM", r.Edits)
	assert.True(t, r.HasRows)
	assert.Equal(t, 13, r.Columns)
	assert.Equal(t, 4, r.Distance)
	assert.InDelta(t, 9.0/13.0, r.Identity(), 1e-12)
}

func TestProcessAlign(t *testing.T) {
	eng := New(Config{})
	r := eng.Process(records.Job{Mode: records.ModeAlign, A: "ACCACAGTCATAAA", B: "ACAGAGTACAAA", Edits: "MDMMMMMMIMMMMDD"})
	require.NoError(t, r.Err)
	assert.Equal(t, "ACCACAGT-CATAAA", r.RowA)
	assert.Equal(t, "A-CAGAGTACAAA--", r.RowB)
}

func TestProcessAlignCigar(t *testing.T) {
	eng := New(Config{Cigar: true})
	r := eng.Process(records.Job{Mode: records.ModeAlign, A: "ACCACAGTCATA", B: "ACAGAGTACAAA", Edits: "1M1D6M1I4M"})
	require.NoError(t, r.Err)
	assert.Equal(t, "MDMMMMMMIMMMM", r.Edits)
	assert.Equal(t, "ACCACAGT-CATA", r.RowA)

	r = eng.Process(records.Job{Mode: records.ModeAlign, A: "A", B: "A", Edits: "M"})
	var se *edits.CigarSyntaxError
	assert.True(t, errors.As(r.Err, &se), "got %v", r.Err)
}

func TestProcessLocal(t *testing.T) {
	eng := New(Config{})
	r := eng.Process(records.Job{Mode: records.ModeLocal, A: "ACCACAGTCATA", B: "GTACAGAGTACAAA", Anchor: 2, Edits: "MDMMMMMMIMMMM"})
	require.NoError(t, r.Err)
	assert.Equal(t, "ACCACAGT-CATA", r.RowA)
	assert.Equal(t, "A-CAGAGTACAAA", r.RowB)
	assert.Equal(t, "ACAGAGTACAAA", r.SeqB, "SeqB is the window")
	assert.Equal(t, 4, r.Distance)
}

func TestProcessDistance(t *testing.T) {
	job := records.Job{Mode: records.ModeDistance, A: "accaaagta", B: "cgacaaatgtcca", Anchor: 2, Edits: "MDMMIMMMMIIM"}

	r := New(Config{}).Process(job)
	require.NoError(t, r.Err)
	assert.Equal(t, 5, r.Distance)
	assert.Equal(t, 12, r.Columns)
	assert.False(t, r.HasRows)

	r = New(Config{NeedRows: true}).Process(job)
	require.NoError(t, r.Err)
	assert.Equal(t, 5, r.Distance)
	assert.True(t, r.HasRows)
	assert.Equal(t, "acca-aagt--a", r.RowA)
	assert.Equal(t, "a-caaatgtcca", r.RowB)
}

func TestProcessReferenceLookup(t *testing.T) {
	refs := fasta.Index{"chr2": "cgacaaatgtcca"}
	eng := New(Config{Refs: refs})
	job := records.Job{Mode: records.ModeDistance, A: "accaaagta", B: "@chr2", Anchor: 2, Edits: "MDMMIMMMMIIM"}

	r := eng.Process(job)
	require.NoError(t, r.Err)
	assert.Equal(t, "chr2", r.RefID)
	assert.Equal(t, 5, r.Distance)

	job.B = "@chr9"
	r = eng.Process(job)
	require.Error(t, r.Err)
	assert.Contains(t, r.Err.Error(), "not found")
	assert.Equal(t, "chr9", r.RefID)

	r = New(Config{}).Process(records.Job{Mode: records.ModeLocal, A: "A", B: "@chr2", Edits: "M"})
	require.Error(t, r.Err)
	assert.Contains(t, r.Err.Error(), "no --reference")
}

func TestProcessErrorsDropPartialResults(t *testing.T) {
	eng := New(Config{})
	r := eng.Process(records.Job{Mode: records.ModeLocal, A: "ACCACAGTCATA", B: "GTACAGAGTACAAA", Anchor: 3, Edits: "MDMMMMMMIMMMM"})
	var ar *edits.AnchorOutOfRangeError
	require.True(t, errors.As(r.Err, &ar), "got %v", r.Err)
	assert.False(t, r.OK())
	assert.Empty(t, r.RowA)
	assert.Empty(t, r.Edits)

	r = eng.Process(records.Job{Mode: records.ModeExtract, A: "A-", B: "C-"})
	var ia *edits.InvalidAlignmentError
	assert.True(t, errors.As(r.Err, &ia))

	r = eng.Process(records.Job{Mode: "global"})
	assert.Error(t, r.Err)
}

func TestProcessHugeAnchorFromJobFile(t *testing.T) {
	jobs, err := records.Load(strings.NewReader("r1 AC ACGT 9223372036854775807 MM\n"), "jobs.tsv", records.ModeDistance)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	for _, cfg := range []Config{{}, {NeedRows: true}} {
		r := New(cfg).Process(jobs[0])
		var ar *edits.AnchorOutOfRangeError
		require.True(t, errors.As(r.Err, &ar), "got %v", r.Err)
		assert.Equal(t, math.MaxInt, ar.Anchor)
	}
}
