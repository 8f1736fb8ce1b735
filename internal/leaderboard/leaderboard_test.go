package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entry(name string, score int, date string) Entry {
	return Entry{Username: name, Score: score, Date: date}
}

func TestRecord_KeepsBestPerUser(t *testing.T) {
	tests := []struct {
		name  string
		table []Entry
		add   Entry
		want  []Entry
	}{
		{
			name:  "higher score replaces",
			table: []Entry{entry("amy", 50, "d1")},
			add:   entry("amy", 80, "d2"),
			want:  []Entry{entry("amy", 80, "d2")},
		},
		{
			name:  "lower score ignored",
			table: []Entry{entry("amy", 80, "d1")},
			add:   entry("amy", 50, "d2"),
			want:  []Entry{entry("amy", 80, "d1")},
		},
		{
			name:  "tie keeps earlier",
			table: []Entry{entry("amy", 60, "d1")},
			add:   entry("amy", 60, "d2"),
			want:  []Entry{entry("amy", 60, "d1")},
		},
		{
			name:  "new user inserted in rank order",
			table: []Entry{entry("amy", 90, "d1"), entry("bo", 30, "d1")},
			add:   entry("cy", 60, "d2"),
			want:  []Entry{entry("amy", 90, "d1"), entry("cy", 60, "d2"), entry("bo", 30, "d1")},
		},
		{
			name:  "empty table",
			table: nil,
			add:   entry("amy", 0, "d1"),
			want:  []Entry{entry("amy", 0, "d1")},
		},
		{
			name:  "stable among different users with equal scores",
			table: []Entry{entry("amy", 40, "d1"), entry("bo", 40, "d1")},
			add:   entry("cy", 40, "d2"),
			want:  []Entry{entry("amy", 40, "d1"), entry("bo", 40, "d1"), entry("cy", 40, "d2")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Record(tt.table, tt.add))
		})
	}
}

func TestRecord_DoesNotMutateInput(t *testing.T) {
	table := []Entry{entry("bo", 10, "d1"), entry("amy", 90, "d1")}
	Record(table, entry("cy", 50, "d2"))
	assert.Equal(t, []Entry{entry("bo", 10, "d1"), entry("amy", 90, "d1")}, table)
}

func TestRecord_UniqueUsernames(t *testing.T) {
	var table []Entry
	scores := []int{10, 70, 30, 70, 5, 100, 20}
	for i, s := range scores {
		name := []string{"amy", "bo", "cy"}[i%3]
		table = Record(table, entry(name, s, "d"))
	}

	seen := map[string]bool{}
	for _, e := range table {
		assert.False(t, seen[e.Username], "duplicate %s", e.Username)
		seen[e.Username] = true
	}
	assert.Equal(t, []Entry{entry("cy", 100, "d"), entry("bo", 70, "d"), entry("amy", 70, "d")}, table)
}

func TestTop(t *testing.T) {
	var table []Entry
	for i := range 15 {
		table = append(table, entry(string(rune('a'+i)), i*10, "d"))
	}

	top := Top(table, DefaultDisplaySize)
	assert.Len(t, top, 10)
	assert.Equal(t, 140, top[0].Score)
	assert.Equal(t, 50, top[9].Score)
	assert.Equal(t, 0, table[0].Score, "input must not be re-sorted")

	assert.Len(t, Top(table[:3], 10), 3)
}

func TestRankOf(t *testing.T) {
	table := []Entry{entry("amy", 10, "d"), entry("bo", 90, "d"), entry("cy", 50, "d")}
	assert.Equal(t, 1, RankOf(table, "bo"))
	assert.Equal(t, 2, RankOf(table, "cy"))
	assert.Equal(t, 3, RankOf(table, "amy"))
	assert.Equal(t, 0, RankOf(table, "dee"))
}

func TestIsCurrent(t *testing.T) {
	e := entry("amy", 70, "d")
	assert.True(t, IsCurrent(e, "amy", 70))
	assert.False(t, IsCurrent(e, "amy", 60), "older best score is not this session")
	assert.False(t, IsCurrent(e, "bo", 70))
}

func TestMedal(t *testing.T) {
	assert.Equal(t, "🥇", Medal(1))
	assert.Equal(t, "🥈", Medal(2))
	assert.Equal(t, "🥉", Medal(3))
	assert.Equal(t, "", Medal(4))
}

func TestNewEntry_Date(t *testing.T) {
	at := time.Date(2026, 5, 4, 3, 2, 1, 0, time.FixedZone("CST", 8*3600))
	e := NewEntry("amy", 30, 2, at)
	assert.Equal(t, "2026-05-03T19:02:01Z", e.Date)
	assert.True(t, e.Time().Equal(at))
	assert.True(t, Entry{Date: "yesterday"}.Time().IsZero())
}
