// cmd/historian/main.go is an asynchronous historian service that pops round
// actions from a Redis queue and persists them to a PostgreSQL database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jason-s-yu/blackjack/internal/cache"
	"github.com/jason-s-yu/blackjack/internal/config"
	"github.com/jason-s-yu/blackjack/internal/database"
	"github.com/jason-s-yu/blackjack/internal/historian"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	cfg := config.Load()
	logger := cfg.NewLogger(*verbose)

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatalf("failed to prepare schema: %v", err)
	}

	q, err := cache.Connect(ctx, cache.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB, Queue: cfg.QueueName})
	if err != nil {
		logger.Fatalf("failed to connect to queue: %v", err)
	}
	defer q.Close()

	logger.WithField("queue", q.Name()).Info("draining round history")
	hs := historian.NewService(q, store, cfg.BatchSize, cfg.FlushEvery, logger)
	if err := hs.Run(ctx); err != nil {
		logger.WithError(err).Error("final flush failed")
	}
	logger.Info("historian shutdown complete")
}
