package sim

import (
	"context"
	"sync"
)

// Factory builds an independent runner for one seed. Runners in an ensemble
// must not share scenes.
type Factory func(seed int64) (*Runner, error)

// Ensemble runs the same configuration over consecutive seeds in parallel.
type Ensemble struct {
	factory   Factory
	numRuns   int
	seedStart int64
}

func NewEnsemble(f Factory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: f, numRuns: numRuns, seedStart: seedStart}
}

// Run returns one result per seed, in seed order. The first error wins.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			r, err := e.factory(seed)
			if err != nil {
				errs[idx] = err
				return
			}
			res, err := r.Run(ctx, cfg)
			if res != nil {
				res.Seed = seed
			}
			results[idx], errs[idx] = res, err
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
