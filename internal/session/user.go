package session

import "slices"

// User is the learner's state for one session. Mistakes is an ordered set
// of bank item IDs answered wrongly and not yet answered correctly since.
type User struct {
	Username   string
	Score      int
	Streak     int
	BestStreak int
	AvatarID   int
	Mistakes   []int
}

// NewUser creates a fresh user seeded with a prior mistakes list.
// Duplicate IDs are dropped, keeping first occurrence order.
func NewUser(username string, avatarID int, mistakes []int) User {
	u := User{Username: username, AvatarID: avatarID, Mistakes: []int{}}
	for _, id := range mistakes {
		u.Mistakes = addMistake(u.Mistakes, id)
	}
	return u
}

// Clone returns a deep copy of u.
func (u User) Clone() User {
	u.Mistakes = slices.Clone(u.Mistakes)
	if u.Mistakes == nil {
		u.Mistakes = []int{}
	}
	return u
}

// HasMistake reports whether id is in the user's mistakes.
func (u User) HasMistake(id int) bool {
	return slices.Contains(u.Mistakes, id)
}

func addMistake(mistakes []int, id int) []int {
	if slices.Contains(mistakes, id) {
		return mistakes
	}
	return append(mistakes, id)
}

func removeMistake(mistakes []int, id int) []int {
	return slices.DeleteFunc(mistakes, func(m int) bool { return m == id })
}
