package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alnedit-core/records"
	"alnedit/internal/engine"
)

// Compile-time check: the concrete engine satisfies the minimal contract.
var _ Processor = (*engine.Engine)(nil)

// slowProc finishes later jobs sooner so workers complete out of order.
type slowProc struct{ n int }

func (p slowProc) Process(j records.Job) engine.Result {
	time.Sleep(time.Duration(p.n-j.Index) * 100 * time.Microsecond)
	return engine.Result{Job: j}
}

func makeJobs(n int) []records.Job {
	jobs := make([]records.Job, n)
	for i := range jobs {
		jobs[i] = records.Job{Index: i, ID: fmt.Sprintf("j%d", i)}
	}
	return jobs
}

func TestForEachResultKeepsInputOrder(t *testing.T) {
	for _, threads := range []int{0, 1, 4, 16} {
		t.Run(fmt.Sprint(threads), func(t *testing.T) {
			var got []int
			err := ForEachResult(context.Background(), Config{Threads: threads},
				SliceFeeder(makeJobs(50)), slowProc{n: 50},
				func(r engine.Result) error {
					got = append(got, r.Job.Index)
					return nil
				})
			require.NoError(t, err)
			require.Len(t, got, 50)
			for i, idx := range got {
				assert.Equal(t, i, idx)
			}
		})
	}
}

func TestForEachResultWithEngine(t *testing.T) {
	jobs := []records.Job{
		{ID: "a", Mode: records.ModeExtract, A: "ACCACAGT-CATA", B: "A-CAGAGTACAAA"},
		{ID: "b", Mode: records.ModeDistance, A: "accaaagta", B: "cgacaaatgtcca", Anchor: 2, Edits: "MDMMIMMMMIIM"},
		{ID: "c", Mode: records.ModeLocal, A: "ACGT", B: "AC", Edits: "MMMM"},
	}
	var got []engine.Result
	err := ForEachResult(context.Background(), Config{Threads: 3}, SliceFeeder(jobs), engine.New(engine.Config{}),
		func(r engine.Result) error {
			got = append(got, r)
			return nil
		})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "MDMMMMMMIMMMM", got[0].Edits)
	assert.Equal(t, 5, got[1].Distance)
	assert.Error(t, got[2].Err, "per-job errors travel in the result")
}

func TestForEachResultVisitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	seen := 0
	err := ForEachResult(context.Background(), Config{Threads: 4},
		SliceFeeder(makeJobs(1000)), slowProc{},
		func(r engine.Result) error {
			seen++
			if r.Job.Index == 3 {
				return stop
			}
			return nil
		})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 4, seen)
}

func TestForEachResultFeedError(t *testing.T) {
	bad := errors.New("bad input")
	feed := func(ctx context.Context, emit func(records.Job) error) error {
		for _, j := range makeJobs(5) {
			if err := emit(j); err != nil {
				return err
			}
		}
		return bad
	}
	n := 0
	err := ForEachResult(context.Background(), Config{Threads: 2}, feed, slowProc{},
		func(engine.Result) error { n++; return nil })
	assert.ErrorIs(t, err, bad)
	assert.Equal(t, 5, n, "jobs fed before the error are still visited")
}

func TestForEachResultCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	feed := func(ctx context.Context, emit func(records.Job) error) error {
		for i := 0; ; i++ {
			if i == 10 {
				cancel()
			}
			if err := emit(records.Job{Index: i}); err != nil {
				return err
			}
		}
	}
	err := ForEachResult(ctx, Config{Threads: 2}, feed, slowProc{},
		func(engine.Result) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
