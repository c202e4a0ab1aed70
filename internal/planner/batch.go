package planner

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchItem is the outcome of one scenario of a batch. Exactly one of Result
// and Err is set.
type BatchItem struct {
	Index  int     `json:"index"`
	Name   string  `json:"name,omitempty"`
	Result *Result `json:"result,omitempty"`
	Err    string  `json:"error,omitempty"`
}

// GenerateBatch runs independent scenarios concurrently, at most limit at a
// time (GOMAXPROCS when limit < 1). A failing scenario is reported in its
// item and does not stop the others; only cancellation aborts the batch.
func (e *Engine) GenerateBatch(ctx context.Context, inputs []Input, limit int) ([]BatchItem, error) {
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}
	items := make([]BatchItem, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := BatchItem{Index: i, Name: in.Name}
			res, err := e.Generate(ctx, in)
			if err != nil {
				item.Err = err.Error()
			} else {
				item.Result = res
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
