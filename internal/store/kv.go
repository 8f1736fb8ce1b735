package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
)

// KV is a Gateway over the kv_entries table.
type KV struct {
	db *sqlx.DB
}

var _ Gateway = (*KV)(nil)

// Load returns the value stored under key.
func (kv *KV) Load(ctx context.Context, key string) (string, bool, error) {
	b := builder()
	query, args := b.Select("value").
		From(b.Table(KVEntriesTable.Name)).
		Where(entsql.EQ("key", key)).
		Query()

	var value string
	err := kv.db.GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load %q: %w", key, err)
	}
	return value, true, nil
}

// Save upserts value under key.
func (kv *KV) Save(ctx context.Context, key, value string) error {
	query, args := builder().Insert(KVEntriesTable.Name).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := kv.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (kv *KV) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete(KVEntriesTable.Name).
		Where(entsql.EQ("key", key)).
		Query()

	if _, err := kv.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
