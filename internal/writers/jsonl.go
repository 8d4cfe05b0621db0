// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"alnedit/internal/engine"
	"alnedit/internal/output"
)

// StartResultJSONLWriter streams each result as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for r := range in {
			if err != nil {
				continue // drain
			}
			err = enc.Encode(output.ToAPIResult(r))
		}
		if err == nil {
			if ferr := bw.Flush(); ferr != nil && !IsBrokenPipe(ferr) {
				err = ferr
			}
		}
		done <- err
	}()

	return in, done
}
