// internal/database/round_test.go
package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundResult(t *testing.T) {
	winner, pot := roundResult(map[string]interface{}{"winner": "player", "pot": float64(25)})
	assert.Equal(t, "player", winner)
	assert.Equal(t, 25, pot)

	winner, pot = roundResult(map[string]interface{}{"winner": "dealer", "pot": 10})
	assert.Equal(t, "dealer", winner)
	assert.Equal(t, 10, pot)

	winner, pot = roundResult(map[string]interface{}{})
	assert.Empty(t, winner)
	assert.Zero(t, pot)
}

func TestInsertEmptyBatchIsNoop(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.InsertRoundActions(context.Background(), nil))
}
