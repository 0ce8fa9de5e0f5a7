package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"veristay/internal/adapters/observability"
	"veristay/internal/adapters/veristay"
	"veristay/internal/app"
	"veristay/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	reg := observability.InitRegistry()
	observability.Serve(ctx, cfg.MetricsAddr, reg)

	log.Info().
		Str("base", cfg.SeedBaseURL).
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Int("rps", cfg.SeedRPS).
		Msg("seeder starting")

	f, err := os.Open(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("open seed file failed")
	}
	entries, err := app.LoadSeed(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("seed file invalid")
	}

	client := veristay.New(cfg.SeedBaseURL, cfg.SeedRPS)
	healthCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = client.Health(healthCtx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("API health check failed")
	}

	rep, err := app.NewSeedService(client, cfg.SeedWorkers).Run(ctx, entries)
	failed := err != nil || rep.Failed > 0
	lvl := zerolog.InfoLevel
	if failed {
		lvl = zerolog.WarnLevel
	}
	log.WithLevel(lvl).Err(err).
		Int64("hostels", rep.Hostels).
		Int64("reviews", rep.Reviews).
		Int64("failed", rep.Failed).
		Msg("seeding completed")
	if failed {
		os.Exit(1)
	}
}
