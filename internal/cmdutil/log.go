// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	humanize "github.com/dustin/go-humanize"
)

// Warnf prints a "WARN: " line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Summaryf prints the end-of-run tally, e.g.
// "alnedit: 12,345 jobs, 3 failed".
func Summaryf(dst io.Writer, quiet bool, prog string, total, failed int) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "%s: %s %s, %s failed\n", prog, humanize.Comma(int64(total)), plural(total, "job", "jobs"), humanize.Comma(int64(failed)))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
