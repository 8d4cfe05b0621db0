// internal/pipeline/processor.go
package pipeline

import (
	"context"

	"alnedit-core/records"
	"alnedit/internal/engine"
)

// Processor is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Processor interface {
	Process(j records.Job) engine.Result
}

// Feeder produces jobs by calling emit until it runs out or emit fails.
type Feeder func(ctx context.Context, emit func(records.Job) error) error

// SliceFeeder feeds a fixed list of jobs.
func SliceFeeder(jobs []records.Job) Feeder {
	return func(ctx context.Context, emit func(records.Job) error) error {
		for _, j := range jobs {
			if err := emit(j); err != nil {
				return err
			}
		}
		return nil
	}
}
