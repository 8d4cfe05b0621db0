// core/records/loader.go
package records

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scan reads whitespace-separated jobs for mode from r and calls emit for each.
// Blank lines and lines starting with '#' are skipped. name labels errors and
// Job.Source; first is the Index given to the first job.
//
// Columns:
//
//	extract          id rowA rowB
//	align            id seqA seqB edits
//	local, distance  id seqA ref anchor edits
//
// An empty sequence or edit column is written as a single '.'.
func Scan(ctx context.Context, r io.Reader, name string, mode Mode, first int, emit func(Job) error) (int, error) {
	want := fieldCount(mode)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	ln, n := 0, 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != want {
			return n, fmt.Errorf("%s:%d bad field count: got %d, want %d for mode %s", name, ln, len(f), want, mode)
		}
		for i := 1; i < len(f); i++ {
			if f[i] == "." {
				f[i] = ""
			}
		}
		j := Job{Index: first + n, ID: f[0], Source: fmt.Sprintf("%s:%d", name, ln), Mode: mode, A: f[1], B: f[2]}
		switch mode {
		case ModeAlign:
			j.Edits = f[3]
		case ModeLocal, ModeDistance:
			a, err := strconv.Atoi(f[3])
			if err != nil {
				return n, fmt.Errorf("%s:%d bad anchor: %v", name, ln, err)
			}
			j.Anchor = a
			j.Edits = f[4]
		}
		if err := emit(j); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// Load reads every job from r into a slice.
func Load(r io.Reader, name string, mode Mode) ([]Job, error) {
	var list []Job
	_, err := Scan(context.Background(), r, name, mode, 0, func(j Job) error {
		list = append(list, j)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}
