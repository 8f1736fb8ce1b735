package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/engpower/internal/audio"
	"github.com/abhisek/engpower/internal/quiz"
	"github.com/abhisek/engpower/internal/router"
	"github.com/abhisek/engpower/internal/screen"
	"github.com/abhisek/engpower/internal/screens/summary"
	sess "github.com/abhisek/engpower/internal/session"
	"github.com/abhisek/engpower/internal/ui/components"
	"github.com/abhisek/engpower/internal/ui/layout"
	"github.com/abhisek/engpower/internal/ui/theme"
)

// DefaultFeedbackHold is the shortest time feedback stays on screen.
const DefaultFeedbackHold = 1200 * time.Millisecond

// Config holds the collaborators shared by every round.
type Config struct {
	Speaker audio.Speaker
	Logger  *slog.Logger

	// BoardSize is the number of leaderboard rows shown at the end.
	BoardSize int

	// FeedbackHold is the minimum time between an answer and the next
	// question. Zero means DefaultFeedbackHold; negative disables it.
	FeedbackHold time.Duration

	// Replay builds the screen that starts the next round.
	Replay func() screen.Screen
}

// SessionScreen runs one drill: question, answer, spoken sentence, repeat.
type SessionScreen struct {
	session *sess.Session
	cfg     Config

	question  *quiz.Question
	reviewing bool
	choice    components.MultiChoice
	outcome   *sess.Outcome
	hintShown bool
	count     int

	showingQuitConfirm bool
	ending             bool
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for an open session.
func New(s *sess.Session, cfg Config) *SessionScreen {
	if cfg.Speaker == nil {
		cfg.Speaker = audio.Silent{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.FeedbackHold == 0 {
		cfg.FeedbackHold = DefaultFeedbackHold
	}
	return &SessionScreen{
		session: s,
		cfg:     cfg,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.nextQuestion()
}

func (s *SessionScreen) Title() string {
	return "Practice"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.outcome != nil {
		return []layout.KeyHint{
			{Key: "H", Description: "Hint"},
			{Key: "Esc", Description: "End game"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "H", Description: "Hint"},
		{Key: "Esc", Description: "End game"},
	}
}

func (s *SessionScreen) Status() *layout.Status {
	u := s.session.User()
	return &layout.Status{
		Avatar:   theme.Avatar(u.AvatarID),
		Username: u.Username,
		Score:    u.Score,
		Streak:   u.Streak,
		Mistakes: len(u.Mistakes),
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.ending {
		return renderMessage(width, height, "Saving your score...")
	}
	if s.question == nil {
		return renderMessage(width, height, "Preparing your question...")
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case speechDoneMsg:
		if s.ending {
			return s, nil
		}
		return s, s.nextQuestion()

	case sessionEndedMsg:
		return s.handleSessionEnded(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, sess.ErrSessionEnded) {
			return s, nil
		}
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.question = msg.Question
	s.reviewing = msg.Reviewing
	s.choice = components.NewMultiChoice(msg.Question.Options[:], msg.Question.CorrectIndex())
	s.outcome = nil
	s.hintShown = false
	s.count++
	return s, nil
}

func (s *SessionScreen) handleSessionEnded(msg sessionEndedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.ending = false
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	next := summary.New(msg.Summary, s.cfg.BoardSize, s.cfg.Replay)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.ending {
		return s, nil
	}

	// Error state: any key ends the game so the score is kept.
	if s.errMsg != "" {
		return s, s.end()
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, s.end()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "h", "H":
		if s.question != nil {
			s.hintShown = !s.hintShown
		}
		return s, nil
	}

	if s.question == nil || s.outcome != nil {
		return s, nil
	}

	var submitted bool
	s.choice, submitted = s.choice.Update(msg)
	if submitted {
		return s.submitAnswer()
	}
	return s, nil
}

// submitAnswer scores the chosen option and reads the full sentence aloud.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	out, err := s.session.Answer(context.Background(), s.choice.Chosen())
	if err != nil {
		s.cfg.Logger.Warn("answer rejected", "error", err)
		return s, nil
	}
	s.outcome = &out
	s.hintShown = true
	return s, s.speak(out.Question.FullText)
}

func (s *SessionScreen) nextQuestion() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		q, err := session.Next()
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		return questionReadyMsg{Question: q, Reviewing: session.Reviewing()}
	}
}

func (s *SessionScreen) speak(text string) tea.Cmd {
	speaker, logger, hold := s.cfg.Speaker, s.cfg.Logger, s.cfg.FeedbackHold
	return func() tea.Msg {
		start := time.Now()
		audio.SpeakOrContinue(context.Background(), speaker, text, logger)
		if rest := hold - time.Since(start); rest > 0 {
			time.Sleep(rest)
		}
		return speechDoneMsg{}
	}
}

func (s *SessionScreen) end() tea.Cmd {
	s.ending = true
	session := s.session
	return func() tea.Msg {
		sum, err := session.End(context.Background())
		return sessionEndedMsg{Summary: sum, Err: err}
	}
}
