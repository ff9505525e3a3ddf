package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"github.com/ridge/must"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/outofforest/linkedlist"
	"github.com/outofforest/linkedlist/check"
)

func main() {
	log := logger.New(logger.ConfigureWithCLI(logger.DefaultConfig))

	config, err := configure(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	must.OK(err)

	ctx, cancel := signal.NotifyContext(logger.WithLogger(context.Background(), log), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	failed, err := run(ctx, config)
	if err != nil {
		log.Error("Checker failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
	if failed > 0 {
		log.Error("Sequence diverged from the model", zap.Int("failed", failed), zap.Int("scripts", config.Scripts))
		cancel()
		os.Exit(1)
	}

	log.Info("All scripts passed", zap.Int("scripts", config.Scripts), zap.Int("steps", config.Steps))
}

func configure(args []string) (check.Config, error) {
	config := check.DefaultConfig

	flags := pflag.NewFlagSet("listcheck", pflag.ContinueOnError)
	// logger flags are parsed separately
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.IntVar(&config.Scripts, "scripts", config.Scripts, "Number of scripts to verify")
	flags.IntVar(&config.Steps, "steps", config.Steps, "Number of steps in each script")
	flags.IntVar(&config.Workers, "workers", config.Workers, "Number of scripts verified in parallel")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "Seed of the first script")

	if err := flags.Parse(args); err != nil {
		return check.Config{}, err
	}
	return config, config.Validate()
}

func newSequence() linkedlist.Sequence[int] {
	return linkedlist.New[int]()
}

func run(ctx context.Context, config check.Config) (int, error) {
	log := logger.Get(ctx)

	var failed int
	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		resultCh := make(chan check.Result)

		spawn("checker", parallel.Continue, func(ctx context.Context) error {
			return check.Run(ctx, config, newSequence, resultCh)
		})
		spawn("collector", parallel.Continue, func(ctx context.Context) error {
			for result := range resultCh {
				if result.Err != nil {
					failed++
					log.Error("Script failed", zap.Int64("seed", result.Seed), zap.Error(result.Err))
				}
			}
			return nil
		})

		return nil
	})
	return failed, err
}
