// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Config is read from the environment; a .env file is loaded by the commands first.
type Config struct {
	Account         string // BLACKJACK_ACCOUNT
	StartingBalance int    // BLACKJACK_STARTING_BALANCE
	LogLevel        string // LOG_LEVEL

	RedisAddr string // REDIS_ADDR; empty disables round history
	RedisDB   int    // REDIS_DB
	QueueName string // HISTORIAN_QUEUE_NAME

	DatabaseURL string        // DATABASE_URL
	BatchSize   int           // HISTORIAN_BATCH_SIZE
	FlushEvery  time.Duration // HISTORIAN_FLUSH_MS
}

// Load reads the environment, falling back to defaults for unset or unparsable values.
func Load() Config {
	return Config{
		Account:         getEnv("BLACKJACK_ACCOUNT", "player"),
		StartingBalance: getEnvInt("BLACKJACK_STARTING_BALANCE", 100),
		LogLevel:        getEnv("LOG_LEVEL", "warn"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		QueueName: getEnv("HISTORIAN_QUEUE_NAME", "blackjack_actions"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		BatchSize:   getEnvInt("HISTORIAN_BATCH_SIZE", 20),
		FlushEvery:  time.Duration(getEnvInt("HISTORIAN_FLUSH_MS", 500)) * time.Millisecond,
	}
}

// HistoryEnabled reports whether round actions should be published to Redis.
func (c Config) HistoryEnabled() bool {
	return c.RedisAddr != ""
}

// NewLogger builds a logrus logger at the configured level; verbose forces debug.
func (c Config) NewLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
