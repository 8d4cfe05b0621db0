package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"alnedit/internal/runutil"
)

// Main runs an entry point with SIGINT/SIGTERM wired to context cancellation
// and exits with its code.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == runutil.ExitOK {
		code = runutil.ExitCancelled
	}

	stop()
	os.Exit(code)
}
