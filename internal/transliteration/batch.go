package transliteration

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Request struct {
	Text      string
	Direction string
}

// Result holds either the output or the precondition error for one request.
type Result struct {
	Direction Direction
	Output    string
	Err       error
}

// TranslateBatch runs Translate over reqs with at most workers goroutines.
// Precondition failures are reported per item; the batch itself only fails
// when ctx is done. Results are in request order.
func TranslateBatch(ctx context.Context, reqs []Request, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Resolve(req.Text, req.Direction)
			if err != nil {
				results[i] = Result{Err: err}
				return nil
			}
			results[i] = Result{Direction: d, Output: d.Apply(req.Text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
