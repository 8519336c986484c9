package ladder

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/dictionary"
)

// Pair is one start/end query.
type Pair struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

// Outcome is the result of one Pair in a batch.
type Outcome struct {
	Pair
	Result *Result
	Err    error
}

// FindAll runs Find for every pair on at most workers goroutines
// (GOMAXPROCS when workers <= 0) and returns outcomes in input order.
// A failed pair never stops the others; cancelling ctx aborts the
// searches still running with ErrSearchAborted. Hooks passed in opts
// are called from several goroutines.
func FindAll(ctx context.Context, dict *dictionary.Dictionary, pairs []Pair, workers int, opts ...Option) []Outcome {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, len(pairs))

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithContext(ctx))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			res, err := Find(p.Start, p.End, dict, all...)
			out[i] = Outcome{Pair: p, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return out
}
