package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/engpower/internal/audio"
	"github.com/abhisek/engpower/internal/session"
	"github.com/abhisek/engpower/internal/store"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	engine, err := session.NewEngine(context.Background(), session.Options{
		Gateway: store.NewMemoryKV(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return newAppModel(Options{Engine: engine, Speaker: audio.Silent{}, LeaderboardSize: 10})
}

func TestAppModel_StartsAtLogin(t *testing.T) {
	m := testModel(t)
	if m.router.Active().Title() != "Sign in" {
		t.Errorf("active = %q, want Sign in", m.router.Active().Title())
	}
	if m.Init() == nil {
		t.Error("expected the login screen to start its commands")
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected minimum size message")
	}
}

func TestAppModel_FrameShowsHeaderAndHints(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	frame := updated.(AppModel).render()
	if !strings.Contains(frame, "EngPower") {
		t.Error("expected header")
	}
	if !strings.Contains(frame, "Avatar") {
		t.Error("expected login key hints in footer")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
