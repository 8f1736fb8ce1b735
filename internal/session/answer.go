package session

import "github.com/abhisek/engpower/internal/quiz"

const (
	// BasePoints is awarded for every correct answer.
	BasePoints = 10

	// StreakBonus is added for every StreakStep consecutive correct
	// answers preceding this one.
	StreakBonus = 5
	StreakStep  = 3
)

// Points returns the award for a correct answer given the streak before it.
func Points(streak int) int {
	return BasePoints + (streak/StreakStep)*StreakBonus
}

// ApplyAnswer scores chosen against q and returns the updated user, whether
// the answer was correct and the points awarded. u is not modified.
//
// A correct answer grows the streak and clears q's item from the mistakes;
// a wrong one resets the streak and records the item as a mistake.
func ApplyAnswer(u User, q *quiz.Question, chosen string) (User, bool, int) {
	next := u.Clone()

	if chosen != q.CorrectAnswer {
		next.Streak = 0
		next.Mistakes = addMistake(next.Mistakes, q.ReviewID)
		return next, false, 0
	}

	points := Points(u.Streak)
	next.Score += points
	next.Streak++
	next.BestStreak = max(next.BestStreak, next.Streak)
	next.Mistakes = removeMistake(next.Mistakes, q.ReviewID)
	return next, true, points
}
