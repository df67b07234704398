package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/neexbeast/holiday-tracker/internal/cache"
	"github.com/neexbeast/holiday-tracker/internal/config"
	"github.com/neexbeast/holiday-tracker/internal/holiday"
	"github.com/neexbeast/holiday-tracker/internal/logger"
	"github.com/neexbeast/holiday-tracker/internal/shell"
	"github.com/neexbeast/holiday-tracker/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("tracker exited with error", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr so they stay out of the menu output.
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	var fetcher holiday.Fetcher = holiday.NewClientWithURL(cfg.APIBaseURL)

	// Optional upstream response cache.
	if cfg.RedisURL != "" {
		redisClient, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		fetcher = holiday.NewCachedFetcher(fetcher, cache.NewCache(redisClient, cfg.CacheTTL), log)
		log.Info("holiday cache enabled", "ttl", cfg.CacheTTL)
	}

	fmt.Println("Loading public holidays, please wait...")
	fmt.Println()

	loader := holiday.NewLoader(fetcher, cfg.Country, cfg.FetchConcurrency, log)
	res := loader.Load(ctx, cfg.Years)

	holidays := store.New(cfg.Years, res.Holidays)

	sh := shell.New(holidays, os.Stdin, os.Stdout, shell.IsTerminal(os.Stdin, os.Stdout), log)
	sh.ReportLoadFailures(res.Failures)

	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
