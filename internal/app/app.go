package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engpower/internal/audio"
	"github.com/abhisek/engpower/internal/router"
	"github.com/abhisek/engpower/internal/screen"
	"github.com/abhisek/engpower/internal/screens/login"
	drill "github.com/abhisek/engpower/internal/screens/session"
	"github.com/abhisek/engpower/internal/session"
	"github.com/abhisek/engpower/internal/ui/layout"
)

// Options wires the game to its engine and speaker.
type Options struct {
	Engine          *session.Engine
	Speaker         audio.Speaker
	Logger          *slog.Logger
	LeaderboardSize int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the login screen.
func newAppModel(opts Options) AppModel {
	var loginFactory func() screen.Screen
	cfg := drill.Config{
		Speaker:   opts.Speaker,
		Logger:    opts.Logger,
		BoardSize: opts.LeaderboardSize,
		Replay: func() screen.Screen {
			return loginFactory()
		},
	}
	loginFactory = func() screen.Screen {
		return login.New(opts.Engine, func(s *session.Session) screen.Screen {
			return drill.New(s, cfg)
		})
	}

	return AppModel{
		router: router.New(loginFactory()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var status *layout.Status
	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
