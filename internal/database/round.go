// internal/database/round.go
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jason-s-yu/blackjack/internal/cache"
)

// roundEndAction is the action type that closes a round.
const roundEndAction = "round_end"

// InsertRoundActions writes a batch of actions in a single transaction. Each
// action upserts its round row; a round_end action marks the round completed.
func (s *Store) InsertRoundActions(ctx context.Context, records []cache.RoundActionRecord) error {
	if len(records) == 0 {
		return nil
	}
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, rec := range records {
			if err := insertRoundActionTx(ctx, tx, rec); err != nil {
				return fmt.Errorf("insertRoundActionTx: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert %d round actions: %w", len(records), err)
	}
	return nil
}

func insertRoundActionTx(ctx context.Context, tx pgx.Tx, rec cache.RoundActionRecord) error {
	upsertRoundQ := `
		INSERT INTO rounds (id, status, start_time)
		VALUES ($1, 'in_progress', $2)
		ON CONFLICT (id) DO NOTHING
	`
	ts := time.UnixMilli(rec.Timestamp)
	if _, err := tx.Exec(ctx, upsertRoundQ, rec.RoundID, ts); err != nil {
		return err
	}

	jsonPayload, err := json.Marshal(rec.ActionPayload)
	if err != nil {
		return err
	}
	actionInsertQ := `
		INSERT INTO round_actions (
			round_id, action_index, actor, action_type, action_payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (round_id, action_index) DO NOTHING
	`
	if _, err := tx.Exec(ctx, actionInsertQ,
		rec.RoundID, rec.ActionIndex, rec.Actor, rec.ActionType, jsonPayload, ts,
	); err != nil {
		return err
	}

	if rec.ActionType == roundEndAction {
		winner, pot := roundResult(rec.ActionPayload)
		finalizeQ := `
			UPDATE rounds
			SET status = 'completed', winner = $2, pot = $3, end_time = $4
			WHERE id = $1
		`
		if _, err := tx.Exec(ctx, finalizeQ, rec.RoundID, winner, pot, ts); err != nil {
			return err
		}
	}
	return nil
}

// roundResult pulls the winner and pot out of a round_end payload. Numbers
// decoded from JSON arrive as float64.
func roundResult(payload map[string]interface{}) (string, int) {
	winner, _ := payload["winner"].(string)
	var pot int
	switch v := payload["pot"].(type) {
	case float64:
		pot = int(v)
	case int:
		pot = v
	}
	return winner, pot
}
