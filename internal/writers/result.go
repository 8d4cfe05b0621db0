// internal/writers/result.go
package writers

import (
	"fmt"
	"io"

	"alnedit/internal/engine"
	"alnedit/internal/output"
	"alnedit/internal/pretty"
)

// Output formats understood by StartResultWriter.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// StartResultWriter spins up a writer goroutine for results. Close the
// returned channel when done, then read exactly one value from the error
// channel.
func StartResultWriter(out io.Writer, format string, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if format == FormatJSONL {
		return StartResultJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case FormatJSON:
			var buf []engine.Result
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf)

		case FormatText:
			var render func(engine.Result) string
			if prettyMode {
				render = func(r engine.Result) string { return pretty.RenderResultWithOptions(r, popt) }
			}
			err = output.StreamText(out, in, header, render)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// keep the producer from blocking after an early write error
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
