package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionResult is one finished practice session.
type SessionResult struct {
	ID         string    `db:"id"`
	Username   string    `db:"username"`
	AvatarID   int       `db:"avatar_id"`
	Score      int       `db:"score"`
	BestStreak int       `db:"best_streak"`
	Questions  int       `db:"questions"`
	Correct    int       `db:"correct"`
	StartedAt  time.Time `db:"started_at"`
	EndedAt    time.Time `db:"ended_at"`
}

// Accuracy returns the fraction of questions answered correctly.
func (r SessionResult) Accuracy() float64 {
	if r.Questions == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Questions)
}

// SessionLog records finished sessions.
type SessionLog interface {
	// Append stores r. An empty ID is replaced with a new UUID.
	Append(ctx context.Context, r SessionResult) (SessionResult, error)

	// Recent returns up to limit results, newest first. A limit of 0
	// returns all results.
	Recent(ctx context.Context, limit int) ([]SessionResult, error)

	// Clear deletes every result.
	Clear(ctx context.Context) error
}

type sessionLog struct {
	db *sqlx.DB
}

func (l *sessionLog) Append(ctx context.Context, r SessionResult) (SessionResult, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	query, args := builder().Insert(SessionResultsTable.Name).
		Columns("id", "username", "avatar_id", "score", "best_streak",
			"questions", "correct", "started_at", "ended_at").
		Values(r.ID, r.Username, r.AvatarID, r.Score, r.BestStreak,
			r.Questions, r.Correct, r.StartedAt.UTC(), r.EndedAt.UTC()).
		Query()

	if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
		return r, fmt.Errorf("append session result: %w", err)
	}
	return r, nil
}

func (l *sessionLog) Recent(ctx context.Context, limit int) ([]SessionResult, error) {
	b := builder()
	sel := b.Select(
		"id", "username", "avatar_id", "score", "best_streak",
		"questions", "correct", "started_at", "ended_at",
	).
		From(b.Table(SessionResultsTable.Name)).
		OrderBy(entsql.Desc("ended_at"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var results []SessionResult
	if err := l.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("query session results: %w", err)
	}
	return results, nil
}

func (l *sessionLog) Clear(ctx context.Context) error {
	query, args := builder().Delete(SessionResultsTable.Name).Query()
	if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear session results: %w", err)
	}
	return nil
}

// MemorySessionLog is an in-process SessionLog for tests.
type MemorySessionLog struct {
	mu      sync.Mutex
	results []SessionResult
}

// NewMemorySessionLog returns an empty MemorySessionLog.
func NewMemorySessionLog() *MemorySessionLog {
	return &MemorySessionLog{}
}

func (m *MemorySessionLog) Append(_ context.Context, r SessionResult) (SessionResult, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return r, nil
}

func (m *MemorySessionLog) Recent(_ context.Context, limit int) ([]SessionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.results)
	slices.SortStableFunc(out, func(a, b SessionResult) int {
		return b.EndedAt.Compare(a.EndedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemorySessionLog) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = nil
	return nil
}
