// cmd/blackjack/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/jason-s-yu/blackjack/internal/bank"
	"github.com/jason-s-yu/blackjack/internal/cache"
	"github.com/jason-s-yu/blackjack/internal/config"
	"github.com/jason-s-yu/blackjack/internal/console"
	"github.com/jason-s-yu/blackjack/internal/game"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	cfg := config.Load()
	logger := cfg.NewLogger(*verbose)

	os.Exit(run(cfg, logger))
}

func run(cfg config.Config, logger *logrus.Logger) int {
	b := bank.New()
	if err := b.Open(cfg.Account, cfg.StartingBalance); err != nil {
		logger.WithError(err).Error("failed to open account")
		return 1
	}

	term := console.NewTerminal(os.Stdin, os.Stdout)
	session := game.NewSession(b, cfg.Account, term, logger)

	if cfg.HistoryEnabled() {
		q, err := cache.Connect(context.Background(), cache.Options{
			Addr:  cfg.RedisAddr,
			DB:    cfg.RedisDB,
			Queue: cfg.QueueName,
		})
		if err != nil {
			logger.WithError(err).Warn("round history disabled")
		} else {
			defer q.Close()
			session.Publisher = q
			logger.WithField("queue", q.Name()).Info("publishing round history")
		}
	}

	if err := session.Run(); err != nil && !errors.Is(err, io.EOF) {
		logger.WithError(err).Error("session aborted")
		return 1
	}
	term.ShowFarewell()
	return 0
}
