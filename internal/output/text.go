// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"alnedit/internal/engine"
)

// StreamText writes one TSV row per result as results arrive. When render is
// non-nil its block (already newline-terminated) follows each row.
func StreamText(w io.Writer, in <-chan engine.Result, header bool, render func(engine.Result) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
		if render == nil {
			continue
		}
		if _, err := io.WriteString(w, render(r)); err != nil {
			return err
		}
	}
	return nil
}
