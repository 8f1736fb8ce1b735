package login

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engpower/internal/router"
	"github.com/abhisek/engpower/internal/screen"
	"github.com/abhisek/engpower/internal/session"
	"github.com/abhisek/engpower/internal/ui/components"
	"github.com/abhisek/engpower/internal/ui/layout"
	"github.com/abhisek/engpower/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// DrillFactory builds the screen that runs a freshly opened session.
type DrillFactory func(*session.Session) screen.Screen

// LoginScreen asks for a name and an avatar, then opens a session.
type LoginScreen struct {
	engine    *session.Engine
	drill     DrillFactory
	input     components.TextInput
	avatar    int
	tickCount int
	started   bool
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen that hands new sessions to drill.
func New(engine *session.Engine, drill DrillFactory) *LoginScreen {
	return &LoginScreen{
		engine: engine,
		drill:  drill,
		input:  components.NewTextInput("Your name", "type your name", session.MaxUsernameLen),
	}
}

func (l *LoginScreen) Title() string {
	return "Sign in"
}

// Init focuses the input and starts generating the first question while
// the player is still typing.
func (l *LoginScreen) Init() tea.Cmd {
	warm := func() tea.Msg {
		l.engine.Warm()
		return nil
	}
	return tea.Batch(l.input.Init(), warm, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		l.tickCount++
		return l, tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "shift+tab":
			l.avatar = (l.avatar - 1 + len(theme.Avatars)) % len(theme.Avatars)
			return l, nil
		case "right", "tab":
			l.avatar = (l.avatar + 1) % len(theme.Avatars)
			return l, nil
		case "enter":
			return l, l.submit()
		}
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *LoginScreen) submit() tea.Cmd {
	if l.started {
		return nil
	}
	sess, err := l.engine.Login(l.input.Value(), l.avatar)
	if err != nil {
		l.input.SetError(loginError(err))
		return nil
	}
	l.started = true
	next := l.drill(sess)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func loginError(err error) string {
	switch {
	case errors.Is(err, session.ErrEmptyUsername):
		return "Please enter your name"
	case errors.Is(err, session.ErrUsernameTooLong):
		return fmt.Sprintf("Names can be at most %d characters", session.MaxUsernameLen)
	default:
		return err.Error()
	}
}

func (l *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, RenderBanner(width), "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Power up your English, one phrase at a time!")
	sections = append(sections, tagline, "")

	sections = append(sections, l.input.View(cw-4), "")
	sections = append(sections, l.renderAvatars(), "")

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press enter to start")
	sections = append(sections, hint)

	return components.Center(strings.Join(sections, "\n"), width, height)
}

func (l *LoginScreen) renderAvatars() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Pick your avatar")

	sparkle := sparkleFrames[l.tickCount%len(sparkleFrames)]
	parts := make([]string, 0, len(theme.Avatars))
	for i, a := range theme.Avatars {
		if i == l.avatar {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)+a+
				lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle))
			continue
		}
		parts = append(parts, " "+a+" ")
	}
	return label + "\n" + "◀ " + strings.Join(parts, " ") + " ▶"
}

// KeyHints returns the footer hints for the login screen.
func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "←/→", Description: "Avatar"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Avatar returns the selected avatar id.
func (l *LoginScreen) Avatar() int {
	return l.avatar
}
