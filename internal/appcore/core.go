// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"alnedit-core/fasta"
	"alnedit-core/records"
	"alnedit/internal/cmdutil"
	"alnedit/internal/engine"
	"alnedit/internal/pipeline"
	"alnedit/internal/runutil"
	"alnedit/internal/writers"
)

// Prog labels the run summary.
const Prog = "alnedit"

type Options struct {
	Mode     records.Mode
	JobFiles []string     // "-" reads Stdin
	Inline   *records.Job // used instead of JobFiles when set
	Stdin    io.Reader

	References []string
	Cigar      bool

	Threads  int
	FailFast bool
	Quiet    bool
}

var errFailFast = errors.New("stopped at first failed job")

// inputError marks failures reading jobs, reported with the usage exit code.
type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// Run processes every job and streams results through wf. It returns the
// process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, wf WriterFactory) int {
	outw := bufio.NewWriter(stdout)

	var refs engine.RefLookup
	if len(o.References) > 0 {
		ix, err := fasta.LoadIndex(parent, o.References...)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return runutil.ExitCancelled
			}
			fmt.Fprintln(stderr, err)
			return runutil.ExitUsage
		}
		refs = ix
	}

	thr := runutil.EffectiveThreads(o.Threads)
	eng := engine.New(engine.Config{
		Cigar:    o.Cigar,
		NeedRows: wf.NeedRows(),
		Refs:     refs,
	})

	feed := fileFeeder(o.JobFiles, o.Mode, o.Stdin)
	if o.Inline != nil {
		feed = pipeline.SliceFeeder([]records.Job{*o.Inline})
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	seen := runutil.NewLRUSet[string](runutil.DefaultSeenCap)
	total, failed := 0, 0
	perr := pipeline.ForEachResult(ctx, pipeline.Config{Threads: thr}, feed, eng,
		func(r engine.Result) error {
			total++
			if r.Job.ID != "" && seen.Add(r.Job.ID) {
				cmdutil.Warnf(stderr, o.Quiet, "%s: duplicate job id %q", r.Job.Source, r.Job.ID)
			}
			if !r.OK() {
				failed++
				cmdutil.Warnf(stderr, o.Quiet, "%s: %s: %v", r.Job.Source, r.Job.ID, r.Err)
			}
			select {
			case inCh <- r:
			case <-ctx.Done():
				return ctx.Err()
			}
			if !r.OK() && o.FailFast {
				return errFailFast
			}
			return nil
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return runutil.ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return runutil.ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return runutil.ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return runutil.ExitIO
	}

	var ie *inputError
	switch {
	case perr == nil, errors.Is(perr, errFailFast):
	case errors.Is(perr, context.Canceled):
		return runutil.ExitCancelled
	case errors.As(perr, &ie):
		fmt.Fprintln(stderr, perr)
		return runutil.ExitUsage
	default:
		fmt.Fprintln(stderr, perr)
		return runutil.ExitIO
	}

	cmdutil.Summaryf(stderr, o.Quiet, Prog, total, failed)
	if failed > 0 {
		return runutil.ExitJobFailed
	}
	return runutil.ExitOK
}

// fileFeeder scans each job file in turn; indices continue across files.
func fileFeeder(paths []string, mode records.Mode, stdin io.Reader) pipeline.Feeder {
	return func(ctx context.Context, emit func(records.Job) error) error {
		next := 0
		for _, p := range paths {
			n, err := scanFile(ctx, p, mode, stdin, next, emit)
			if err != nil {
				return err
			}
			next += n
		}
		return nil
	}
}

func scanFile(ctx context.Context, path string, mode records.Mode, stdin io.Reader, first int, emit func(records.Job) error) (int, error) {
	name, r := path, stdin
	if path == "-" {
		name = "stdin"
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return 0, &inputError{errors.Wrap(err, "open job file")}
		}
		defer f.Close()
		r = f
	}
	// emit errors come from the pipeline and pass through unwrapped
	var emitErr error
	n, err := records.Scan(ctx, r, name, mode, first, func(j records.Job) error {
		if e := emit(j); e != nil {
			emitErr = e
			return e
		}
		return nil
	})
	switch {
	case err == nil:
		return n, nil
	case emitErr != nil || ctx.Err() != nil:
		return n, err
	}
	return n, &inputError{err}
}
