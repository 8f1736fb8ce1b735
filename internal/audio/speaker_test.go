package audio

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpeaker struct {
	err  error
	said []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) error {
	f.said = append(f.said, text)
	return f.err
}

func TestSpeakOrContinue_SwallowsErrors(t *testing.T) {
	f := &fakeSpeaker{err: errors.New("no sound card")}
	SpeakOrContinue(context.Background(), f, "hello", nil)
	assert.Equal(t, []string{"hello"}, f.said)

	// A nil speaker is a no-op.
	SpeakOrContinue(context.Background(), nil, "hello", nil)
}

func TestNew_Disabled(t *testing.T) {
	assert.Equal(t, Silent{}, New(Config{Enabled: false, Command: "true"}, nil))
}

func TestNew_MissingCommandIsSilent(t *testing.T) {
	s := New(Config{Enabled: true, Command: "engpower-no-such-tts-binary"}, nil)
	assert.Equal(t, Silent{}, s)
}

func TestCommandSpeaker_RunsProgram(t *testing.T) {
	path, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true(1) not available")
	}
	s := New(Config{Enabled: true, Command: path}, nil)
	require.IsType(t, &CommandSpeaker{}, s)
	assert.NoError(t, s.Speak(context.Background(), "查明 means find out in English."))
}

func TestCommandSpeaker_Failure(t *testing.T) {
	path, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false(1) not available")
	}
	s := &CommandSpeaker{Program: path}
	assert.Error(t, s.Speak(context.Background(), "text"))
}

func TestCommandSpeaker_Timeout(t *testing.T) {
	path, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep(1) not available")
	}
	// sleep receives the text as its argument.
	s := &CommandSpeaker{Program: path, Timeout: 20 * time.Millisecond}
	start := time.Now()
	err = s.Speak(context.Background(), "5")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestSilent(t *testing.T) {
	assert.NoError(t, Silent{}.Speak(context.Background(), "anything"))
}
