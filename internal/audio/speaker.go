// Package audio reads question sentences aloud through a local
// text-to-speech program.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"slices"
	"time"
)

// ErrNoProgram is returned by Detect when no TTS program is installed.
var ErrNoProgram = errors.New("no text-to-speech program found")

// Speaker reads text aloud and returns when playback finishes.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Silent is a Speaker that returns immediately.
type Silent struct{}

func (Silent) Speak(context.Context, string) error { return nil }

// CommandSpeaker runs an external program with the text as its final
// argument, e.g. `espeak-ng -v en-us -s 150 "<text>"`.
type CommandSpeaker struct {
	Program string
	Args    []string
	// Timeout bounds one playback. Zero means no limit.
	Timeout time.Duration
}

// Speak runs the program and waits for it to exit.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	args := append(slices.Clone(s.Args), text)
	cmd := exec.CommandContext(ctx, s.Program, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w (%s)", s.Program, err, out)
	}
	return nil
}

// defaultPrograms lists the TTS programs tried by Detect, in order.
func defaultPrograms() []CommandSpeaker {
	progs := []CommandSpeaker{
		{Program: "espeak-ng", Args: []string{"-v", "en-us", "-s", "150"}},
		{Program: "espeak", Args: []string{"-v", "en-us", "-s", "150"}},
	}
	if runtime.GOOS == "darwin" {
		progs = append([]CommandSpeaker{{Program: "say", Args: []string{"-r", "170"}}}, progs...)
	}
	return progs
}

// Detect returns a CommandSpeaker for the first installed default program.
func Detect(timeout time.Duration) (*CommandSpeaker, error) {
	for _, p := range defaultPrograms() {
		if path, err := exec.LookPath(p.Program); err == nil {
			p.Program = path
			p.Timeout = timeout
			return &p, nil
		}
	}
	return nil, ErrNoProgram
}

// Config selects a speaker.
type Config struct {
	Enabled bool
	Command string // empty means auto-detect
	Args    []string
	Timeout time.Duration
}

// New returns the speaker described by cfg. A disabled config or a
// missing program yields Silent; the latter is logged.
func New(cfg Config, logger *slog.Logger) Speaker {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Enabled {
		return Silent{}
	}

	if cfg.Command == "" {
		s, err := Detect(cfg.Timeout)
		if err != nil {
			logger.Info("audio disabled", "reason", err)
			return Silent{}
		}
		return s
	}

	path, err := exec.LookPath(cfg.Command)
	if err != nil {
		logger.Warn("audio disabled", "command", cfg.Command, "error", err)
		return Silent{}
	}
	return &CommandSpeaker{Program: path, Args: cfg.Args, Timeout: cfg.Timeout}
}

// SpeakOrContinue plays text and treats any failure as completion.
func SpeakOrContinue(ctx context.Context, s Speaker, text string, logger *slog.Logger) {
	if s == nil {
		return
	}
	if err := s.Speak(ctx, text); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("speech failed", "error", err)
	}
}
