// Package session drives a practice session: it seeds the learner from
// their mistake history, serves questions with one-ahead prefetch, scores
// answers and folds the final score into the leaderboard.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/abhisek/engpower/internal/bank"
	"github.com/abhisek/engpower/internal/leaderboard"
	"github.com/abhisek/engpower/internal/quiz"
	"github.com/abhisek/engpower/internal/store"
)

// MaxUsernameLen is the longest accepted username, in runes.
const MaxUsernameLen = 32

var (
	// ErrEmptyUsername is returned by Login for blank usernames.
	ErrEmptyUsername = errors.New("username is empty")

	// ErrUsernameTooLong is returned by Login for usernames over MaxUsernameLen runes.
	ErrUsernameTooLong = fmt.Errorf("username is longer than %d characters", MaxUsernameLen)
)

// Options configures an Engine.
type Options struct {
	// Bank is the item bank. Defaults to bank.Default().
	Bank *bank.Bank

	// Quiz controls question generation.
	Quiz quiz.Config

	// QuizOptions are passed through to quiz.New.
	QuizOptions []quiz.Option

	// Gateway persists the leaderboard and mistake history. Required.
	Gateway store.Gateway

	// SessionLog records finished sessions. Nil disables the log.
	SessionLog store.SessionLog

	// Logger receives non-fatal warnings. Nil means slog.Default().
	Logger *slog.Logger

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Engine owns the process-wide state shared across sessions: the
// leaderboard, the mistake history and the warm-up prefetch.
type Engine struct {
	gen    *quiz.Generator
	gw     store.Gateway
	log    store.SessionLog
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	board   []leaderboard.Entry
	history MistakeHistory
	warm    *Prefetcher
}

// NewEngine loads the leaderboard and mistake history through the
// gateway and returns a ready Engine.
func NewEngine(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Gateway == nil {
		return nil, errors.New("session: gateway is required")
	}
	if opts.Bank == nil {
		opts.Bank = bank.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	board, err := leaderboard.Load(ctx, opts.Gateway, opts.Logger)
	if err != nil {
		return nil, err
	}
	history, err := LoadHistory(ctx, opts.Gateway, opts.Logger)
	if err != nil {
		return nil, err
	}

	qopts := append([]quiz.Option{quiz.WithLogger(opts.Logger)}, opts.QuizOptions...)
	gen := quiz.New(opts.Bank, opts.Quiz, qopts...)

	return &Engine{
		gen:     gen,
		gw:      opts.Gateway,
		log:     opts.SessionLog,
		logger:  opts.Logger,
		now:     opts.Now,
		board:   board,
		history: history,
		warm:    NewPrefetcher(gen),
	}, nil
}

// Generator returns the question generator.
func (e *Engine) Generator() *quiz.Generator {
	return e.gen
}

// Bank returns the item bank.
func (e *Engine) Bank() *bank.Bank {
	return e.gen.Bank()
}

// Warm starts generating the first question of the next session before
// anyone has logged in. The next Login hands it to the new session.
func (e *Engine) Warm() {
	e.warm.Start(nil)
}

// Login validates username, seeds a user from the stored mistake history
// and opens a session for them.
func (e *Engine) Login(username string, avatarID int) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLen {
		return nil, ErrUsernameTooLong
	}

	e.mu.Lock()
	mistakes := e.history.Get(username)
	e.mu.Unlock()

	s := newSession(e, NewUser(username, avatarID, mistakes))
	e.warm.handOff(s.prefetch)
	e.logger.Info("session started", "session", s.id, "username", username, "mistakes", len(mistakes))
	return s, nil
}

// Leaderboard returns a copy of the full persisted table in rank order.
func (e *Engine) Leaderboard() []leaderboard.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return leaderboard.Top(e.board, -1)
}

// MistakeHistory returns a copy of the stored mistake history.
func (e *Engine) MistakeHistory() MistakeHistory {
	e.mu.Lock()
	defer e.mu.Unlock()
	h := make(MistakeHistory, len(e.history))
	for name := range e.history {
		h[name] = e.history.Get(name)
	}
	return h
}

// History returns recent finished sessions, newest first.
func (e *Engine) History(ctx context.Context, limit int) ([]store.SessionResult, error) {
	if e.log == nil {
		return nil, nil
	}
	return e.log.Recent(ctx, limit)
}

// ResetLeaderboard clears the leaderboard.
func (e *Engine) ResetLeaderboard(ctx context.Context) error {
	e.mu.Lock()
	e.board = []leaderboard.Entry{}
	e.mu.Unlock()
	return leaderboard.Save(ctx, e.gw, nil)
}

// ResetMistakes clears the stored mistakes of the given users, or of
// everyone when no username is given.
func (e *Engine) ResetMistakes(ctx context.Context, usernames ...string) error {
	e.mu.Lock()
	if len(usernames) == 0 {
		e.history = MistakeHistory{}
	}
	for _, name := range usernames {
		delete(e.history, name)
	}
	h := maps.Clone(e.history)
	e.mu.Unlock()
	return SaveHistory(ctx, e.gw, h)
}

// ResetHistory clears the session log.
func (e *Engine) ResetHistory(ctx context.Context) error {
	if e.log == nil {
		return nil
	}
	return e.log.Clear(ctx)
}

// storeMistakes records the user's current mistakes and saves the
// history. Save failures are logged.
func (e *Engine) storeMistakes(ctx context.Context, u User) {
	e.mu.Lock()
	e.history[u.Username] = u.Clone().Mistakes
	h := maps.Clone(e.history)
	e.mu.Unlock()

	if err := SaveHistory(ctx, e.gw, h); err != nil {
		e.logger.Warn("save mistake history failed", "username", u.Username, "error", err)
	}
}

// record folds a finished session into the leaderboard and saves it.
func (e *Engine) record(ctx context.Context, entry leaderboard.Entry) []leaderboard.Entry {
	e.mu.Lock()
	e.board = leaderboard.Record(e.board, entry)
	board := leaderboard.Top(e.board, -1)
	e.mu.Unlock()

	if err := leaderboard.Save(ctx, e.gw, board); err != nil {
		e.logger.Warn("save leaderboard failed", "error", err)
	}
	return board
}
