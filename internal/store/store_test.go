package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range Tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table.Name,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table.Name, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KV().Save(ctx, "k", "v"); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, ok, err := s.KV().Load(ctx, "k")
	if err != nil || !ok || got != "v" {
		t.Errorf("Load after reopen = (%q, %v, %v), want (\"v\", true, nil)", got, ok, err)
	}
}

func TestKV_LoadMissing(t *testing.T) {
	s := openTestStore(t)
	got, ok, err := s.KV().Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || got != "" {
		t.Errorf("Load(missing) = (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestKV_SaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	for _, v := range []string{"one", "two", "three"} {
		if err := kv.Save(ctx, "key", v); err != nil {
			t.Fatalf("Save(%q): %v", v, err)
		}
	}

	got, ok, err := kv.Load(ctx, "key")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if got != "three" {
		t.Errorf("Load = %q, want %q", got, "three")
	}

	var rows int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM kv_entries").Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Errorf("kv_entries has %d rows, want 1", rows)
	}
}

func TestKV_Delete(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if err := kv.Save(ctx, "key", "v"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := kv.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := kv.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if _, ok, _ := kv.Load(ctx, "key"); ok {
		t.Error("key still present after Delete")
	}
}

func TestSessionLog_AppendRecent(t *testing.T) {
	s := openTestStore(t)
	log := s.SessionLog()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"amy", "bo", "cy"} {
		r, err := log.Append(ctx, SessionResult{
			Username:   name,
			AvatarID:   i,
			Score:      10 * (i + 1),
			BestStreak: i,
			Questions:  4,
			Correct:    i + 1,
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			EndedAt:    base.Add(time.Duration(i)*time.Hour + 5*time.Minute),
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
		if r.ID == "" {
			t.Error("Append should assign an ID")
		}
	}

	got, err := log.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d results", len(got))
	}
	if got[0].Username != "cy" || got[1].Username != "bo" {
		t.Errorf("Recent order = [%s %s], want [cy bo]", got[0].Username, got[1].Username)
	}
	if got[0].Score != 30 || got[0].Correct != 3 {
		t.Errorf("Recent[0] = %+v", got[0])
	}
	if !got[0].EndedAt.Equal(base.Add(2*time.Hour + 5*time.Minute)) {
		t.Errorf("EndedAt = %v", got[0].EndedAt)
	}

	if err := log.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err = log.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent after Clear: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Recent after Clear returned %d results", len(got))
	}
}

func TestSessionResult_Accuracy(t *testing.T) {
	tests := []struct {
		questions, correct int
		want               float64
	}{
		{0, 0, 0},
		{4, 3, 0.75},
		{10, 10, 1},
	}
	for _, tt := range tests {
		r := SessionResult{Questions: tt.questions, Correct: tt.correct}
		if got := r.Accuracy(); got != tt.want {
			t.Errorf("Accuracy(%d/%d) = %v, want %v", tt.correct, tt.questions, got, tt.want)
		}
	}
}
