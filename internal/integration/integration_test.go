// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alnedit/internal/app"
	"alnedit/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func run(t *testing.T, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestInlineExtract(t *testing.T) {
	code, out, errs := run(t, "--mode", "extract", "--row-a", "ACCACAGT-CATA", "--row-b", "A-CAGAGTACAAA")
	require.Equal(t, 0, code, errs)
	assert.Equal(t,
		"id\tmode\tseq_a\tseq_b\tedits\tcigar\tcolumns\tdistance\tidentity\terror\n"+
			"inline\textract\tACCACAGTCATA\tACAGAGTACAAA\tMDMMMMMMIMMMM\t1M1D6M1I4M\t13\t4\t0.6923\t.\n",
		out)
	assert.Equal(t, "alnedit: 1 job, 0 failed\n", errs)
}

func TestInlineLocalJSON(t *testing.T) {
	code, out, errs := run(t, "--mode", "local", "--seq-a", "ACCACAGTCATA", "--seq-b", "GTACAGAGTACAAA",
		"--anchor", "2", "--edits", "MDMMMMMMIMMMM", "--output", "json", "--quiet")
	require.Equal(t, 0, code, errs)
	assert.Empty(t, errs)

	var got []api.ResultV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ACCACAGT-CATA", got[0].RowA)
	assert.Equal(t, "A-CAGAGTACAAA", got[0].RowB)
	assert.Equal(t, "ACAGAGTACAAA", got[0].SeqB)
	require.NotNil(t, got[0].Anchor)
	assert.Equal(t, 2, *got[0].Anchor)
}

func TestInlineCigar(t *testing.T) {
	code, out, errs := run(t, "--mode", "align", "--seq-a", "ACCACAGTCATA", "--seq-b", "ACAGAGTACAAA",
		"--edits", "1M1D6M1I4M", "--cigar", "--no-header", "--quiet")
	require.Equal(t, 0, code, errs)
	assert.Equal(t, "inline\talign\tACCACAGTCATA\tACAGAGTACAAA\tMDMMMMMMIMMMM\t1M1D6M1I4M\t13\t4\t0.6923\t.\n", out)
}

const refFA = ">chr2 test reference\ncgacaa\natgtcca\n"

const distanceJobs = `# id	read	ref	anchor	edits
r1	accaaagta	cgacaaatgtcca	2	MDMMIMMMMIIM
r3	ACGT	ACGT	3	MMMM
r2	accaaagta	@chr2	2	MDMMIMMMMIIM
`

func TestDistanceJobFile(t *testing.T) {
	ref := write(t, "ref.fa", refFA)
	jobs := write(t, "jobs.tsv", distanceJobs)

	code, out, errs := run(t, "--mode", "distance", "--reference", ref, jobs)
	assert.Equal(t, 1, code, "a failed job makes the run fail")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "r1\tdistance\taccaaagta\tacaaatgtcca\tMDMMIMMMMIIM\t1M1D2M1I4M2I1M\t12\t5\t0.5833\t.", lines[1])
	assert.Equal(t, "r3\tdistance\t.\t.\t.\t.\t.\t.\t.\tedits: window [3,7) outside reference of length 4", lines[2])
	assert.Equal(t, "r2\tdistance\taccaaagta\tacaaatgtcca\tMDMMIMMMMIIM\t1M1D2M1I4M2I1M\t12\t5\t0.5833\t.", lines[3])

	assert.Contains(t, errs, "WARN: "+jobs+":3: r3: edits: window")
	assert.Contains(t, errs, "alnedit: 3 jobs, 1 failed")
}

func TestFailFast(t *testing.T) {
	ref := write(t, "ref.fa", refFA)
	jobs := write(t, "jobs.tsv", distanceJobs)

	code, out, _ := run(t, "--mode", "distance", "--reference", ref, "--fail-fast", "--no-header", "--threads", "4", jobs)
	assert.Equal(t, 1, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "r1\t"))
	assert.True(t, strings.HasPrefix(lines[1], "r3\t"))
}

func TestMissingReferenceID(t *testing.T) {
	jobs := write(t, "jobs.tsv", "x\tACGT\t@nope\t0\tMMMM\n")
	code, out, _ := run(t, "--mode", "local", "--no-header", "--quiet", jobs)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, `reference "nope" requested but no --reference loaded`)
}

func TestStdinJobs(t *testing.T) {
	var out, errBuf bytes.Buffer
	in := strings.NewReader("a ACCACAGTCATAAA ACAGAGTACAAA MDMMMMMMIMMMMDD\n")
	code := app.RunContextWithStdin(context.Background(), []string{"--mode", "align", "--output", "jsonl", "-"}, in, &out, &errBuf)
	require.Equal(t, 0, code, errBuf.String())

	var v api.ResultV1
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, "ACCACAGT-CATAAA", v.RowA)
	assert.Equal(t, "A-CAGAGTACAAA--", v.RowB)
	assert.Equal(t, "stdin:1", v.Source)
}

func TestBadJobFileIsUsageError(t *testing.T) {
	jobs := write(t, "bad.tsv", "a ACGT\n")
	code, _, errs := run(t, "--mode", "align", jobs)
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "bad field count")
}

func TestUsageErrors(t *testing.T) {
	code, out, errs := run(t, "--mode", "nope", "--seq-a", "A")
	assert.Equal(t, 2, code)
	assert.Contains(t, errs, "unknown mode")
	assert.Contains(t, out, "Usage:")

	code, out, _ = run(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")

	code, out, _ = run(t, "--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "alnedit version "))
}

// randomRows builds an expanded pair with no all-gap column.
func randomRows(rng *rand.Rand, n int) (string, string) {
	const alpha = "ACGT"
	var a, b strings.Builder
	for i := 0; i < n; i++ {
		x, y := alpha[rng.Intn(4)], alpha[rng.Intn(4)]
		switch rng.Intn(5) {
		case 0:
			x = '-'
		case 1:
			y = '-'
		}
		a.WriteByte(x)
		b.WriteByte(y)
	}
	return a.String(), b.String()
}

func TestParallelEqualsSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		a, b := randomRows(rng, 1+rng.Intn(80))
		fmt.Fprintf(&sb, "job%d\t%s\t%s\n", i, a, b)
	}
	jobs := write(t, "extract.tsv", sb.String())

	runN := func(threads int) string {
		code, out, errs := run(t, "--mode", "extract", "--output", "json", "--threads", fmt.Sprint(threads), jobs)
		require.Equal(t, 0, code, errs)
		return out
	}
	serial := runN(1)
	assert.Equal(t, serial, runN(8))

	var got []api.ResultV1
	require.NoError(t, json.Unmarshal([]byte(serial), &got))
	require.Len(t, got, 500)
	for i, r := range got {
		assert.Equal(t, fmt.Sprintf("job%d", i), r.ID)
		assert.True(t, r.OK)
	}
}

func TestDuplicateJobIDWarning(t *testing.T) {
	jobs := write(t, "dup.tsv", "x\tAC\tAC\tMM\ny\tAC\tAG\tMM\nx\tA\tA\tM\n")

	code, out, errs := run(t, "--mode", "align", "--no-header", jobs)
	require.Equal(t, 0, code, errs)
	assert.Equal(t, 3, strings.Count(out, "\n"), "duplicates are still processed")
	assert.Contains(t, errs, "WARN: "+jobs+":3: duplicate job id \"x\"")
	assert.Equal(t, 1, strings.Count(errs, "duplicate job id"))

	code, _, errs = run(t, "--mode", "align", "--no-header", "--quiet", jobs)
	require.Equal(t, 0, code)
	assert.Empty(t, errs)
}

func TestHugeAnchorFailsJobNotRun(t *testing.T) {
	jobs := write(t, "huge.tsv", "r1 AC ACGT 9223372036854775807 MM\nr2 AC ACGT 1 MM\n")

	code, out, errs := run(t, "--mode", "distance", "--no-header", "--threads", "2", jobs)
	assert.Equal(t, 1, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "outside reference of length 4")
	assert.Equal(t, "r2\tdistance\tAC\tCG\tMM\t2M\t2\t2\t0.0000\t.", lines[1])
	assert.Contains(t, errs, "alnedit: 2 jobs, 1 failed")
}
