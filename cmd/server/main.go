package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/quizwire/quizwire/internal/common/clock"
	"github.com/quizwire/quizwire/internal/common/logging"
	"github.com/quizwire/quizwire/internal/common/uuid"
	"github.com/quizwire/quizwire/internal/questions"
	"github.com/quizwire/quizwire/internal/repositories/stats"
	"github.com/quizwire/quizwire/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
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

	srv, err := server.New(&server.Config{
		Bind:              cfg.bind,
		ServerName:        cfg.serverName,
		UDPPort:           cfg.udpPort,
		MinPlayers:        cfg.minPlayers,
		AdmissionTimeout:  cfg.admissionTimeout,
		AnswerTimeout:     cfg.answerTimeout,
		BroadcastInterval: cfg.broadcastInterval,
		StatsRepo:         stats.NewMemory(),
		Picker:            questions.New(&questions.Config{Seed: cfg.seed}),
		Clock:             clock.New(),
		UUIDGenerator:     uuid.New(),
		Logger:            log,
	})
	if err != nil {
		return err
	}

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("server stopped", zap.String("reason", "interrupted"))
	return nil
}
