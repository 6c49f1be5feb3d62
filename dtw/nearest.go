package dtw

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Distances computes DTW(query, dataset[k], opts) for every k.
//
// Sequences are evaluated concurrently by at most opts.Workers goroutines
// (0 = GOMAXPROCS). Each evaluation owns its own column buffers, so no state
// is shared between them. Once ctx is done no further sequence is started and
// ctx.Err() is returned.
//
// The first failing sequence aborts the batch; its error is wrapped with the
// dataset index and still matches the original sentinel via errors.Is.
func Distances(ctx context.Context, query []float64, dataset [][]float64, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]float64, len(dataset))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for k, seq := range dataset {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := DTW(query, seq, &o)
			if err != nil {
				return fmt.Errorf("dataset[%d]: %w", k, err)
			}
			out[k] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup cancels gctx only on failure; a parent cancel that raced the
	// loop must still be reported.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// NearestNeighbour returns the index of the dataset sequence closest to query
// under constrained DTW, together with all distances. Ties resolve to the
// lowest index.
//
// Errors: ErrEmptyDataset for an empty dataset, otherwise as Distances.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Radius, _ = ParseRadius("10%", len(query))
//	best, dists, err := NearestNeighbour(ctx, query, dataset, &opts)
func NearestNeighbour(ctx context.Context, query []float64, dataset [][]float64, opts *Options) (best int, distances []float64, err error) {
	if len(dataset) == 0 {
		return 0, nil, ErrEmptyDataset
	}

	distances, err = Distances(ctx, query, dataset, opts)
	if err != nil {
		return 0, nil, err
	}

	return floats.MinIdx(distances), distances, nil
}
