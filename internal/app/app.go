// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"alnedit-core/records"
	"alnedit/internal/appcore"
	"alnedit/internal/cli"
	"alnedit/internal/clibase"
	"alnedit/internal/pretty"
	"alnedit/internal/runutil"
	"alnedit/internal/version"
	"alnedit/internal/writers"
)

// InlineID names the job built from command-line flags.
const InlineID = "inline"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunContextWithStdin(parent, argv, os.Stdin, stdout, stderr)
}

// RunContextWithStdin is RunContext with an explicit reader behind "-".
func RunContextWithStdin(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(appcore.Prog)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if errors.Is(err, clibase.ErrPrintedAndExitOK) {
		cli.PrintExamples(outw, appcore.Prog)
		return flushed(outw, stderr, runutil.ExitOK)
	}
	if err != nil {
		code := runutil.ExitOK
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = runutil.ExitUsage
		}
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, code)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", appcore.Prog, version.Version)
		return flushed(outw, stderr, runutil.ExitOK)
	}

	popt := pretty.DefaultOptions
	popt.Color = runutil.ColorEnabled(opts.Color, stdout)

	coreOpts := appcore.Options{
		Mode:       opts.Mode,
		JobFiles:   opts.JobFiles,
		Stdin:      stdin,
		References: opts.Reference,
		Cigar:      opts.Cigar,
		Threads:    opts.Threads,
		FailFast:   opts.FailFast,
		Quiet:      opts.Quiet,
	}
	if opts.Inline() {
		coreOpts.Inline = &records.Job{
			ID:     InlineID,
			Source: InlineID,
			Mode:   opts.Mode,
			A:      inlineA(opts),
			B:      inlineB(opts),
			Anchor: opts.Anchor,
			Edits:  opts.Edits,
		}
	}
	wf := appcore.NewResultWriterFactory(opts.Output, opts.Header, opts.Pretty, popt)
	return appcore.Run(parent, stdout, stderr, coreOpts, wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func inlineA(o cli.Options) string {
	if o.Mode == records.ModeExtract {
		return o.RowA
	}
	return o.SeqA
}

func inlineB(o cli.Options) string {
	if o.Mode == records.ModeExtract {
		return o.RowB
	}
	return o.SeqB
}

// flushed flushes outw and returns code, or 3 if the flush failed for any
// reason other than a closed pipe.
func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return runutil.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return runutil.ExitIO
	}
	return code
}
