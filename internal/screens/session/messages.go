package session

import (
	"github.com/abhisek/engpower/internal/quiz"
	sess "github.com/abhisek/engpower/internal/session"
)

// questionReadyMsg is sent when the next question has been served.
type questionReadyMsg struct {
	Question  *quiz.Question
	Reviewing bool
	Err       error
}

// speechDoneMsg is sent once the answered sentence has been read aloud
// and the feedback has been on screen long enough.
type speechDoneMsg struct{}

// sessionEndedMsg carries the result of ending the session.
type sessionEndedMsg struct {
	Summary sess.Summary
	Err     error
}
