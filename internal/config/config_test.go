// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"BLACKJACK_ACCOUNT", "BLACKJACK_STARTING_BALANCE", "LOG_LEVEL",
		"REDIS_ADDR", "REDIS_DB", "HISTORIAN_QUEUE_NAME",
		"DATABASE_URL", "HISTORIAN_BATCH_SIZE", "HISTORIAN_FLUSH_MS",
	} {
		t.Setenv(k, "")
	}

	c := Load()
	assert.Equal(t, "player", c.Account)
	assert.Equal(t, 100, c.StartingBalance)
	assert.Equal(t, "blackjack_actions", c.QueueName)
	assert.Equal(t, 20, c.BatchSize)
	assert.Equal(t, 500*time.Millisecond, c.FlushEvery)
	assert.False(t, c.HistoryEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BLACKJACK_STARTING_BALANCE", "250")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("HISTORIAN_BATCH_SIZE", "not-a-number")

	c := Load()
	assert.Equal(t, 250, c.StartingBalance)
	assert.True(t, c.HistoryEnabled())
	assert.Equal(t, 20, c.BatchSize, "unparsable values fall back to the default")
}

func TestNewLogger(t *testing.T) {
	c := Config{LogLevel: "info"}
	assert.Equal(t, logrus.InfoLevel, c.NewLogger(false).GetLevel())
	assert.Equal(t, logrus.DebugLevel, c.NewLogger(true).GetLevel())

	c.LogLevel = "loud"
	assert.Equal(t, logrus.WarnLevel, c.NewLogger(false).GetLevel())
}
