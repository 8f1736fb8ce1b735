package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/engpower/internal/quiz"
	"github.com/abhisek/engpower/internal/ui/components"
	"github.com/abhisek/engpower/internal/ui/theme"
)

// renderQuestionView renders the card for the current question.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q := s.question
	cw := components.ContentWidth(width)
	inner := cw - 6

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d", s.count))
	if s.reviewing {
		info += "  " + theme.Review.Render("↺ Reviewing a mistake")
	}
	b.WriteString(info)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(inner).Render(s.renderContext(q)))
	b.WriteString("\n\n")

	b.WriteString(s.choice.View(inner))

	if s.outcome != nil {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback())
	}

	if s.hintShown {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("💡 " + q.Hint))
	} else if s.outcome == nil {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Select (1-4) or use arrows + Enter"))
	}

	return components.Center(components.Card(b.String(), cw), width, height)
}

// renderContext shows the sentence with its blank, or with the chosen
// answer filled in once the question is answered.
func (s *SessionScreen) renderContext(q *quiz.Question) string {
	before, after, found := strings.Cut(q.ContextTemplate, quiz.Blank)
	if !found {
		return theme.Body.Render(q.ContextTemplate)
	}

	fill := theme.Blank.Render(quiz.Blank)
	if out := s.outcome; out != nil {
		if out.Correct {
			fill = theme.Correct.Render(out.Chosen)
		} else {
			fill = theme.Incorrect.Render(out.Chosen)
		}
	}
	return theme.Body.Render(before) + fill + theme.Body.Render(after)
}

// renderFeedback renders the result line under the options.
func (s *SessionScreen) renderFeedback() string {
	out := s.outcome
	if out.Correct {
		return theme.Correct.Render(fmt.Sprintf("✓ Correct! +%d points", out.Points))
	}
	return theme.Incorrect.Render("✗ Not quite. The answer is: ") +
		theme.Correct.Render(out.Answer)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("End the game now?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your score goes on the leaderboard."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Success).
		Render("[Y] Yes, end game"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return components.Center(b.String(), width, height)
}

// renderMessage renders a dim status line such as a loading notice.
func renderMessage(width, height int, msg string) string {
	return components.Center(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(msg), width, height)
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return components.Center(lipgloss.NewStyle().
		Foreground(theme.Error).
		Render(fmt.Sprintf("Error: %s\n\nPress any key to end the game.", errMsg)), width, height)
}
