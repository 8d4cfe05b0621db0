// core/fasta/index.go
package fasta

import (
	"context"
	"fmt"
)

// Index maps record IDs to sequences.
type Index map[string]string

// Lookup returns the sequence stored under id.
func (ix Index) Lookup(id string) (string, bool) {
	s, ok := ix[id]
	return s, ok
}

// LoadIndex reads every record of every path into one Index.
// Duplicate IDs are an error, including across files.
func LoadIndex(ctx context.Context, paths ...string) (Index, error) {
	ix := make(Index)
	for _, p := range paths {
		err := StreamPathCtx(ctx, p, func(r Record) error {
			if _, dup := ix[r.ID]; dup {
				return fmt.Errorf("duplicate sequence id %q", r.ID)
			}
			ix[r.ID] = string(r.Seq)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return ix, nil
}
