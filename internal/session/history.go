package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/abhisek/engpower/internal/store"
)

// MistakesKey is the gateway key the mistake history is stored under.
const MistakesKey = "engpower-mistakes"

var historySchema = store.Schema{
	Name: "mistakes",
	Definition: `{
  "type": "object",
  "additionalProperties": {
    "type": "array",
    "items": {"type": "integer"}
  }
}`,
}

// MistakeHistory maps a username to that user's outstanding mistakes.
type MistakeHistory map[string][]int

// Get returns a copy of the mistakes recorded for username.
func (h MistakeHistory) Get(username string) []int {
	return slices.Clone(h[username])
}

// Usernames returns the recorded usernames in sorted order.
func (h MistakeHistory) Usernames() []string {
	return slices.Sorted(maps.Keys(h))
}

// EncodeHistory serializes h as a JSON object.
func EncodeHistory(h MistakeHistory) (string, error) {
	if h == nil {
		h = MistakeHistory{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return "", fmt.Errorf("encode mistakes: %w", err)
	}
	return string(b), nil
}

// DecodeHistory parses a mistake history after checking its schema.
// Returns *store.ErrInvalidData for malformed input.
func DecodeHistory(raw string) (MistakeHistory, error) {
	if err := store.ValidateJSON(historySchema, []byte(raw)); err != nil {
		return nil, err
	}
	var h MistakeHistory
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, &store.ErrInvalidData{Schema: historySchema.Name, Err: err}
	}
	return h, nil
}

// LoadHistory reads the mistake history from gw. Missing or malformed
// data yields an empty history; only gateway failures are returned.
func LoadHistory(ctx context.Context, gw store.Gateway, logger *slog.Logger) (MistakeHistory, error) {
	raw, ok, err := gw.Load(ctx, MistakesKey)
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}
	if !ok {
		return MistakeHistory{}, nil
	}

	h, err := DecodeHistory(raw)
	var invalid *store.ErrInvalidData
	if errors.As(err, &invalid) {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("ignoring malformed mistake history", "error", err)
		return MistakeHistory{}, nil
	}
	return h, err
}

// SaveHistory writes h to gw.
func SaveHistory(ctx context.Context, gw store.Gateway, h MistakeHistory) error {
	raw, err := EncodeHistory(h)
	if err != nil {
		return err
	}
	if err := gw.Save(ctx, MistakesKey, raw); err != nil {
		return fmt.Errorf("save mistakes: %w", err)
	}
	return nil
}
