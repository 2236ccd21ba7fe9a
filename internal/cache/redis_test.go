// internal/cache/redis_test.go
package cache

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	id := uuid.New()
	data, err := json.Marshal(map[string]interface{}{
		"round_id":       id.String(),
		"action_index":   3,
		"actor":          "dealer",
		"action_type":    "hit",
		"action_payload": map[string]interface{}{"card": "king"},
		"timestamp":      1700000000000,
	})
	require.NoError(t, err)

	rec, err := DecodeRecord(string(data))
	require.NoError(t, err)
	assert.Equal(t, id, rec.RoundID)
	assert.Equal(t, 3, rec.ActionIndex)
	assert.Equal(t, "dealer", rec.Actor)
	assert.Equal(t, "king", rec.ActionPayload["card"])
}

func TestDecodeRecordRejectsGarbage(t *testing.T) {
	_, err := DecodeRecord("not json")
	assert.Error(t, err)

	_, err = DecodeRecord(`{"action_type":"hit"}`)
	assert.ErrorContains(t, err, "missing round_id")
}
