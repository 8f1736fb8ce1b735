// Package leaderboard folds finished sessions into a ranked table that
// keeps each user's best result.
package leaderboard

import (
	"cmp"
	"slices"
	"time"
)

// DefaultDisplaySize is the number of rows shown on the board.
const DefaultDisplaySize = 10

// Entry is one row of the persisted table.
type Entry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	AvatarID int    `json:"avatarId"`
	Date     string `json:"date"`
}

// NewEntry stamps an entry with the given time in RFC 3339.
func NewEntry(username string, score, avatarID int, at time.Time) Entry {
	return Entry{
		Username: username,
		Score:    score,
		AvatarID: avatarID,
		Date:     at.UTC().Format(time.RFC3339),
	}
}

// Time parses Date. The zero time is returned for unparseable dates.
func (e Entry) Time() time.Time {
	t, err := time.Parse(time.RFC3339, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Record appends e to table and returns the new table: sorted by score
// descending, with only the first (highest, then earliest) entry kept
// per username. table is not modified.
func Record(table []Entry, e Entry) []Entry {
	all := make([]Entry, 0, len(table)+1)
	all = append(all, table...)
	all = append(all, e)
	sortByScore(all)

	seen := make(map[string]bool, len(all))
	out := all[:0]
	for _, entry := range all {
		if seen[entry.Username] {
			continue
		}
		seen[entry.Username] = true
		out = append(out, entry)
	}
	return out
}

// Top returns at most n entries in rank order. table is not modified.
func Top(table []Entry, n int) []Entry {
	out := slices.Clone(table)
	sortByScore(out)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// RankOf returns the 1-based rank of username in table, or 0 when absent.
func RankOf(table []Entry, username string) int {
	for i, e := range Top(table, -1) {
		if e.Username == username {
			return i + 1
		}
	}
	return 0
}

// IsCurrent reports whether row e is the result just recorded for the
// given user and score.
func IsCurrent(e Entry, username string, score int) bool {
	return e.Username == username && e.Score == score
}

func sortByScore(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// Medal returns the podium badge for a 1-based rank, or "" below third.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return ""
	}
}
