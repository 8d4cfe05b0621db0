// internal/runutil/runutil.go
package runutil

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// Exit codes shared by every entry point.
const (
	ExitOK        = 0
	ExitJobFailed = 1
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// EffectiveThreads maps 0 (or less) to the number of CPUs.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ComputeNeedRows tells the engine whether distance jobs must also build the
// expanded rows. Pretty text blocks and the structured formats show them.
func ComputeNeedRows(output string, pretty bool) bool {
	switch output {
	case "json", "jsonl":
		return true
	case "text":
		return pretty
	}
	return false
}

// ColorEnabled resolves a --color mode against the destination. "auto"
// colours only when w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
