package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/quizwire/quizwire/internal/client"
	"github.com/quizwire/quizwire/internal/common/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const releaseVersion = "0.1.0"

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer cancel()

	cfg := &config{}
	cobra.CheckErr(newCmd(cfg).ExecuteContext(ctx))
}

func run(ctx context.Context, cfg *config) error {
	log, err := logging.New(cfg.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Only one socket can own the discovery port, so a swarm discovers
	// once and shares the address.
	addr := cfg.serverAddr
	if addr == "" {
		addr, err = client.Discover(ctx, cfg.udpPort, log)
		if err != nil {
			return err
		}
	}

	registry := client.NewRegistry(&client.RegistryConfig{Seed: cfg.seed})

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.count; i++ {
		seed := cfg.seed
		if seed != 0 {
			seed += int64(i)
		}

		bot, err := client.New(&client.Config{
			Registry:   registry,
			ServerAddr: addr,
			UDPPort:    cfg.udpPort,
			MaxRetries: cfg.maxRetries,
			RetryDelay: cfg.retryDelay,
			Seed:       seed,
			Logger:     log,
		})
		if err != nil {
			return err
		}

		g.Go(func() error {
			return bot.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
