package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/engpower/internal/store"
)

// Key is the gateway key the table is stored under.
const Key = "engpower-leaderboard"

var entriesSchema = store.Schema{
	Name: "leaderboard",
	Definition: `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["username", "score", "avatarId", "date"],
    "properties": {
      "username": {"type": "string", "minLength": 1},
      "score": {"type": "integer", "minimum": 0},
      "avatarId": {"type": "integer", "minimum": 0},
      "date": {"type": "string"}
    }
  }
}`,
}

// Encode serializes the table as a JSON array.
func Encode(table []Entry) (string, error) {
	if table == nil {
		table = []Entry{}
	}
	b, err := json.Marshal(table)
	if err != nil {
		return "", fmt.Errorf("encode leaderboard: %w", err)
	}
	return string(b), nil
}

// Decode parses a JSON array of entries after checking it against the
// table schema. Returns *store.ErrInvalidData for malformed input.
func Decode(raw string) ([]Entry, error) {
	if err := store.ValidateJSON(entriesSchema, []byte(raw)); err != nil {
		return nil, err
	}
	var table []Entry
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return nil, &store.ErrInvalidData{Schema: entriesSchema.Name, Err: err}
	}
	return table, nil
}

// Load reads the table from gw. A missing or malformed table yields an
// empty table; only gateway failures are returned.
func Load(ctx context.Context, gw store.Gateway, logger *slog.Logger) ([]Entry, error) {
	raw, ok, err := gw.Load(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	if !ok {
		return []Entry{}, nil
	}

	table, err := Decode(raw)
	var invalid *store.ErrInvalidData
	if errors.As(err, &invalid) {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("ignoring malformed leaderboard", "error", err)
		return []Entry{}, nil
	}
	return table, err
}

// Save writes the table to gw.
func Save(ctx context.Context, gw store.Gateway, table []Entry) error {
	raw, err := Encode(table)
	if err != nil {
		return err
	}
	if err := gw.Save(ctx, Key, raw); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}
