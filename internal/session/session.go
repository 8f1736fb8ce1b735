package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/abhisek/engpower/internal/leaderboard"
	"github.com/abhisek/engpower/internal/quiz"
	"github.com/abhisek/engpower/internal/store"
)

var (
	// ErrNoQuestion is returned by Answer when no unanswered question is showing.
	ErrNoQuestion = errors.New("no question to answer")

	// ErrSessionEnded is returned by operations on an ended session.
	ErrSessionEnded = errors.New("session has ended")
)

// Feedback is the presentation state after an answer.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Outcome is the result of answering one question.
type Outcome struct {
	Correct  bool
	Points   int
	Feedback Feedback
	Chosen   string
	Answer   string
	Question *quiz.Question
}

// Session is one learner's run from login to the leaderboard. Its
// methods are safe to call from UI commands running on other goroutines.
type Session struct {
	id        string
	engine    *Engine
	prefetch  *Prefetcher
	startedAt time.Time

	mu        sync.Mutex
	user      User
	current   *quiz.Question
	answered  bool
	questions int
	correct   int
	ended     bool
}

func newSession(e *Engine, u User) *Session {
	return &Session{
		id:        uuid.NewString(),
		engine:    e,
		prefetch:  NewPrefetcher(e.gen),
		startedAt: e.now(),
		user:      u,
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// User returns a snapshot of the learner's state.
func (s *Session) User() User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// Current returns the question on screen, or nil before the first Next.
func (s *Session) Current() *quiz.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Reviewing reports whether the current question revisits a mistake.
func (s *Session) Reviewing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.user.HasMistake(s.current.ReviewID)
}

// Next makes the following question current and returns it. A prefetched
// question is served first; otherwise one is generated on the spot. Next
// then starts prefetching the question after it.
func (s *Session) Next() (*quiz.Question, error) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return nil, ErrSessionEnded
	}
	mistakes := s.user.Clone().Mistakes
	s.mu.Unlock()

	q := s.prefetch.Take(mistakes)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return nil, ErrSessionEnded
	}
	s.current = q
	s.answered = false
	s.prefetch.Start(s.user.Mistakes)
	return q, nil
}

// Answer scores chosen against the current question, updates the user and
// saves their mistakes. An option not on the card is simply wrong.
func (s *Session) Answer(ctx context.Context, chosen string) (Outcome, error) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return Outcome{}, ErrSessionEnded
	}
	if s.current == nil || s.answered {
		s.mu.Unlock()
		return Outcome{}, ErrNoQuestion
	}

	q := s.current
	next, correct, points := ApplyAnswer(s.user, q, chosen)
	s.user = next
	s.answered = true
	s.questions++
	if correct {
		s.correct++
	}
	snapshot := s.user.Clone()
	s.mu.Unlock()

	s.engine.storeMistakes(ctx, snapshot)

	out := Outcome{
		Correct:  correct,
		Points:   points,
		Feedback: FeedbackIncorrect,
		Chosen:   chosen,
		Answer:   q.CorrectAnswer,
		Question: q,
	}
	if correct {
		out.Feedback = FeedbackCorrect
	}
	s.engine.logger.Debug("answer",
		"session", s.id,
		"review_id", q.ReviewID,
		"correct", correct,
		"points", points,
		"streak", snapshot.Streak,
	)
	return out, nil
}

// Summary describes a finished session.
type Summary struct {
	SessionID string
	User      User
	Questions int
	Correct   int
	Duration  time.Duration
	Rank      int
	Board     []leaderboard.Entry
}

// Accuracy returns the fraction of answered questions that were correct.
func (s Summary) Accuracy() float64 {
	if s.Questions == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Questions)
}

// End drops any pending prefetch, records the score on the leaderboard,
// logs the session and returns its summary.
func (s *Session) End(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return Summary{}, ErrSessionEnded
	}
	s.ended = true
	s.current = nil
	u := s.user.Clone()
	questions, correct := s.questions, s.correct
	s.mu.Unlock()

	s.prefetch.Discard()

	e := s.engine
	endedAt := e.now()
	board := e.record(ctx, leaderboard.NewEntry(u.Username, u.Score, u.AvatarID, endedAt))

	if e.log != nil {
		_, err := e.log.Append(ctx, store.SessionResult{
			ID:         s.id,
			Username:   u.Username,
			AvatarID:   u.AvatarID,
			Score:      u.Score,
			BestStreak: u.BestStreak,
			Questions:  questions,
			Correct:    correct,
			StartedAt:  s.startedAt,
			EndedAt:    endedAt,
		})
		if err != nil {
			e.logger.Warn("append session result failed", "session", s.id, "error", err)
		}
	}

	e.logger.Info("session ended", "session", s.id, "username", u.Username, "score", u.Score, "questions", questions)
	return Summary{
		SessionID: s.id,
		User:      u,
		Questions: questions,
		Correct:   correct,
		Duration:  endedAt.Sub(s.startedAt),
		Rank:      leaderboard.RankOf(board, u.Username),
		Board:     board,
	}, nil
}
