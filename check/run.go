package check

import (
	"context"
	"fmt"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/linkedlist"
)

// Factory creates empty sequence to be verified.
type Factory func() linkedlist.Sequence[int]

// Result is the outcome of verifying one script.
type Result struct {
	Seed int64
	Err  error
}

// Run verifies config.Scripts scripts using config.Workers workers and reports the result of each of them to resultCh.
// Results are delivered in completion order, not in seed order. resultCh is closed when Run returns.
func Run(ctx context.Context, config Config, factory Factory, resultCh chan<- Result) error {
	defer close(resultCh)

	if err := config.Validate(); err != nil {
		return err
	}

	log := logger.Get(ctx)
	log.Debug("Verifying scripts",
		zap.Int("scripts", config.Scripts),
		zap.Int("steps", config.Steps),
		zap.Int("workers", config.Workers),
		zap.Int64("seed", config.Seed))

	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		seedCh := make(chan int64, config.Workers)

		spawn("seedDistributor", parallel.Continue, func(ctx context.Context) error {
			return seedDistributor(ctx, config, seedCh)
		})
		for i := 0; i < config.Workers; i++ {
			spawn(fmt.Sprintf("worker-%d", i), parallel.Continue, func(ctx context.Context) error {
				return worker(ctx, config.Steps, factory, seedCh, resultCh)
			})
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Debug("Scripts verified")
	return errors.WithStack(ctx.Err())
}

func seedDistributor(ctx context.Context, config Config, seedCh chan<- int64) error {
	defer close(seedCh)

	for i := 0; i < config.Scripts; i++ {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case seedCh <- config.Seed + int64(i):
		}
	}
	return nil
}

func worker(
	ctx context.Context,
	steps int,
	factory Factory,
	seedCh <-chan int64,
	resultCh chan<- Result,
) error {
	log := logger.Get(ctx)
	for seed := range seedCh {
		result := Result{
			Seed: seed,
			Err:  verifySeed(factory, seed, steps),
		}
		if result.Err != nil {
			log.Debug("Script failed", zap.Int64("seed", seed), zap.Error(result.Err))
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case resultCh <- result:
		}
	}

	return nil
}

func verifySeed(factory Factory, seed int64, steps int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if errPanic, ok := r.(error); ok {
				err = errPanic
			} else {
				err = errors.Errorf("panic: %s", r)
			}
		}
	}()

	return Verify(factory(), Script(seed, steps))
}
