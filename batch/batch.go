package batch

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SayHelloLexa/linmath"
)

// ItemError reports the input item that failed a batch.
//
// The original error can be accessed via errors.Unwrap.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("batch: item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Map calls fn for every element of in and returns the results in input order.
//
// At most WithConcurrency calls run at the same time. The first error stops
// scheduling of the remaining items, cancels the context passed to fn and is
// returned wrapped in an *ItemError. If ctx is cancelled before every item was
// scheduled, ctx.Err() is returned.
func Map[T, R any](ctx context.Context, in []T, fn func(context.Context, T) (R, error), opts ...Option) ([]R, error) {
	return run(ctx, "map", in, fn, applyOptions(opts))
}

// Transform multiplies every vector by m. See linmath.MultiplyVector.
func Transform(ctx context.Context, m linmath.Matrix, vs []linmath.Vector, opts ...Option) ([]linmath.Vector, error) {
	return run(ctx, "transform", vs, func(_ context.Context, v linmath.Vector) (linmath.Vector, error) {
		return linmath.MultiplyVector(m, v)
	}, applyOptions(opts))
}

// NormalizeAll normalizes every vector. See linmath.Normalize.
func NormalizeAll(ctx context.Context, vs []linmath.Vector, opts ...Option) ([]linmath.Vector, error) {
	return run(ctx, "normalize", vs, func(_ context.Context, v linmath.Vector) (linmath.Vector, error) {
		return linmath.Normalize(v)
	}, applyOptions(opts))
}

// ScaleAll multiplies every vector by k. See linmath.Scale.
func ScaleAll(ctx context.Context, vs []linmath.Vector, k float64, opts ...Option) ([]linmath.Vector, error) {
	return run(ctx, "scale", vs, func(_ context.Context, v linmath.Vector) (linmath.Vector, error) {
		return linmath.Scale(v, k)
	}, applyOptions(opts))
}

func run[T, R any](ctx context.Context, op string, in []T, fn func(context.Context, T) (R, error), o options) ([]R, error) {
	start := time.Now()
	out := make([]R, len(in))

	var succeeded atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	scheduled := 0
	for i, item := range in {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, item)
			if err != nil {
				return &ItemError{Index: i, Err: err}
			}
			out[i] = r
			succeeded.Add(1)
			return nil
		})
	}

	err := g.Wait()
	if err == nil && scheduled < len(in) {
		err = ctx.Err()
	}

	failed := len(in) - int(succeeded.Load())
	o.metrics.RecordBatch(op, len(in), failed, time.Since(start))
	o.logger.LogBatch(ctx, op, len(in), failed, err)

	if err != nil {
		return nil, err
	}
	return out, nil
}
