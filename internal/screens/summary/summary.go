package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engpower/internal/leaderboard"
	"github.com/abhisek/engpower/internal/router"
	"github.com/abhisek/engpower/internal/screen"
	"github.com/abhisek/engpower/internal/session"
	"github.com/abhisek/engpower/internal/ui/components"
	"github.com/abhisek/engpower/internal/ui/layout"
	"github.com/abhisek/engpower/internal/ui/theme"
)

const (
	actionPlayAgain = iota
	actionQuit
)

// SummaryScreen shows the result of a finished session and the
// leaderboard it was recorded on.
type SummaryScreen struct {
	summary session.Summary
	size    int
	replay  func() screen.Screen
	actions components.ActionBar
	left    bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen listing at most size leaderboard rows.
// replay builds the screen for the next round.
func New(summary session.Summary, size int, replay func() screen.Screen) *SummaryScreen {
	if size <= 0 {
		size = leaderboard.DefaultDisplaySize
	}
	return &SummaryScreen{
		summary: summary,
		size:    size,
		replay:  replay,
		actions: components.ActionBar{Labels: []string{"Play again", "Quit"}},
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Leaderboard"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "Play again"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Status() *layout.Status {
	u := s.summary.User
	return &layout.Status{
		Avatar:   theme.Avatar(u.AvatarID),
		Username: u.Username,
		Score:    u.Score,
		Streak:   u.Streak,
		Mistakes: len(u.Mistakes),
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.left {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.actions = s.actions.Move(-1)
	case "right", "l":
		s.actions = s.actions.Move(1)
	case "enter":
		return s, s.act(s.actions.Selected)
	case "r", "R":
		return s, s.act(actionPlayAgain)
	case "q", "Q", "esc":
		return s, s.act(actionQuit)
	}
	return s, nil
}

func (s *SummaryScreen) act(action int) tea.Cmd {
	s.left = true
	if action == actionQuit || s.replay == nil {
		return tea.Quit
	}
	next := s.replay()
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: next}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Well played, %s!", sum.User.Username)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Final score: %d", sum.User.Score)))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Questions: %d    Correct: %d    Best streak: %d    Time: %d:%02d",
			sum.Questions, sum.Correct, sum.User.BestStreak, mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(components.NewProgressBar("Accuracy", sum.Accuracy(), true, cw).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(s.rankLine()))
	b.WriteString("\n\n")

	b.WriteString(components.Card(s.renderBoard(), cw))
	b.WriteString("\n\n")
	b.WriteString(s.actions.View())

	return components.Center(b.String(), width, height)
}

func (s *SummaryScreen) rankLine() string {
	sum := s.summary
	switch {
	case sum.Rank == 0:
		return "Your score was not recorded."
	case sum.Rank <= s.size:
		if m := leaderboard.Medal(sum.Rank); m != "" {
			return fmt.Sprintf("%s You are #%d on the leaderboard!", m, sum.Rank)
		}
		return fmt.Sprintf("You are #%d on the leaderboard!", sum.Rank)
	default:
		return fmt.Sprintf("You are #%d. Keep practicing to reach the top %d!", sum.Rank, s.size)
	}
}

func (s *SummaryScreen) renderBoard() string {
	rows := leaderboard.Top(s.summary.Board, s.size)
	if len(rows) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("No scores yet.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("🏆 Top players"))
	b.WriteString("\n\n")

	u := s.summary.User
	for i, e := range rows {
		rank := i + 1
		badge := leaderboard.Medal(rank)
		if badge == "" {
			badge = fmt.Sprintf("%2d", rank)
		}
		date := ""
		if t := e.Time(); !t.IsZero() {
			date = t.Local().Format("Jan 2")
		}
		name := e.Username
		if leaderboard.IsCurrent(e, u.Username, u.Score) {
			name += " (you)"
		}

		line := fmt.Sprintf("%s  %s %-24s %6d  %s", badge, theme.Avatar(e.AvatarID), name, e.Score, date)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if leaderboard.IsCurrent(e, u.Username, u.Score) {
			style = theme.CurrentRow
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
