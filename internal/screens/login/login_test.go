package login

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/engpower/internal/router"
	"github.com/abhisek/engpower/internal/screen"
	"github.com/abhisek/engpower/internal/session"
	"github.com/abhisek/engpower/internal/store"
	"github.com/abhisek/engpower/internal/ui/theme"
)

type stubScreen struct {
	sess *session.Session
}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "drill" }
func (s *stubScreen) Title() string                          { return "Practice" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(l *LoginScreen, text string) {
	for _, r := range text {
		l.Update(keyPress(r))
	}
}

func newTestLogin(t *testing.T) (*LoginScreen, *int) {
	t.Helper()
	engine, err := session.NewEngine(context.Background(), session.Options{
		Gateway: store.NewMemoryKV(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	calls := 0
	l := New(engine, func(s *session.Session) screen.Screen {
		calls++
		return &stubScreen{sess: s}
	})
	return l, &calls
}

func TestLoginScreen_Title(t *testing.T) {
	l, _ := newTestLogin(t)
	if l.Title() != "Sign in" {
		t.Errorf("Title = %q, want %q", l.Title(), "Sign in")
	}
}

func TestLoginScreen_EmptyName(t *testing.T) {
	l, calls := newTestLogin(t)

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no navigation for an empty name")
	}
	if !strings.Contains(l.View(100, 40), "Please enter your name") {
		t.Error("expected inline error")
	}
	if *calls != 0 {
		t.Error("drill factory should not run")
	}

	// Typing clears the error.
	typeText(l, "a")
	if l.input.Err() != "" {
		t.Error("expected error to clear on typing")
	}
}

func TestLoginScreen_BlankNameRejected(t *testing.T) {
	l, _ := newTestLogin(t)
	typeText(l, "   ")

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected whitespace-only name to be rejected")
	}
}

func TestLoginScreen_Start(t *testing.T) {
	l, calls := newTestLogin(t)
	typeText(l, "amy")
	l.Update(specialKey(tea.KeyRight))
	l.Update(specialKey(tea.KeyRight))

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected navigation on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	stub := msg.Screen.(*stubScreen)
	u := stub.sess.User()
	if u.Username != "amy" || u.AvatarID != 2 {
		t.Errorf("user = %+v, want amy with avatar 2", u)
	}
	if *calls != 1 {
		t.Errorf("drill factory called %d times, want 1", *calls)
	}

	// A second Enter does not open another session.
	if _, cmd := l.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("expected a single session per login screen")
	}
}

func TestLoginScreen_AvatarWraps(t *testing.T) {
	l, _ := newTestLogin(t)

	l.Update(specialKey(tea.KeyLeft))
	if l.Avatar() != len(theme.Avatars)-1 {
		t.Errorf("avatar = %d, want last", l.Avatar())
	}
	l.Update(specialKey(tea.KeyRight))
	if l.Avatar() != 0 {
		t.Errorf("avatar = %d, want 0", l.Avatar())
	}
}

func TestLoginError(t *testing.T) {
	if got := loginError(session.ErrUsernameTooLong); !strings.Contains(got, "32") {
		t.Errorf("loginError = %q, want the length limit", got)
	}
}

func TestLoginScreen_View(t *testing.T) {
	l, _ := newTestLogin(t)
	view := l.View(100, 40)
	if !strings.Contains(view, "Pick your avatar") {
		t.Error("expected avatar picker")
	}
	if !strings.Contains(l.View(60, 40), bannerCompact) {
		t.Error("expected compact banner on narrow terminals")
	}
}
