// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultQueueName is the Redis list (queue) name for round action logs.
var DefaultQueueName = "blackjack_actions"

// RoundActionRecord holds the minimal info needed by the historian to replay a round.
type RoundActionRecord struct {
	RoundID       uuid.UUID              `json:"round_id"`
	ActionIndex   int                    `json:"action_index"`
	Actor         string                 `json:"actor"`
	ActionType    string                 `json:"action_type"`
	ActionPayload map[string]interface{} `json:"action_payload"`
	Timestamp     int64                  `json:"timestamp"`
}

// Options configures a connection to the round action queue.
type Options struct {
	Addr  string
	DB    int
	Queue string
}

// Queue wraps a Redis client bound to a single list used as a FIFO of round actions.
type Queue struct {
	rdb  *redis.Client
	name string
}

// Connect opens a Redis client and verifies it with a PING.
func Connect(ctx context.Context, opts Options) (*Queue, error) {
	if opts.Queue == "" {
		opts.Queue = DefaultQueueName
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: opts.Addr,
		DB:   opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}
	return &Queue{rdb: rdb, name: opts.Queue}, nil
}

// Name returns the list name.
func (q *Queue) Name() string {
	return q.name
}

// PublishRoundAction serializes the record to JSON and pushes it onto the queue.
func (q *Queue) PublishRoundAction(ctx context.Context, record RoundActionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal RoundActionRecord: %w", err)
	}
	if err := q.rdb.RPush(ctx, q.name, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", q.name, err)
	}
	return nil
}

// Pop blocks up to timeout for the next record. ok is false when nothing arrived in time.
func (q *Queue) Pop(ctx context.Context, timeout time.Duration) (rec RoundActionRecord, ok bool, err error) {
	res, err := q.rdb.BLPop(ctx, timeout, q.name).Result()
	if errors.Is(err, redis.Nil) {
		return rec, false, nil
	}
	if err != nil {
		return rec, false, fmt.Errorf("BLPop %s: %w", q.name, err)
	}
	// res[0] is the queue name and res[1] the payload.
	if len(res) < 2 {
		return rec, false, nil
	}
	rec, err = DecodeRecord(res[1])
	if err != nil {
		return rec, false, err
	}
	return rec, true, nil
}

// Close releases the underlying client.
func (q *Queue) Close() error {
	return q.rdb.Close()
}

// DecodeRecord parses a queued payload.
func DecodeRecord(payload string) (RoundActionRecord, error) {
	var rec RoundActionRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return rec, fmt.Errorf("invalid action record: %w", err)
	}
	if rec.RoundID == uuid.Nil {
		return rec, errors.New("invalid action record: missing round_id")
	}
	return rec, nil
}
