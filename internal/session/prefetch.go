package session

import (
	"slices"
	"sync"

	"github.com/abhisek/engpower/internal/quiz"
)

// QuestionSource produces questions. *quiz.Generator satisfies it.
type QuestionSource interface {
	Generate(mistakes []int) *quiz.Question
}

// Prefetcher holds at most one question generated ahead of time.
type Prefetcher struct {
	src QuestionSource

	mu      sync.Mutex
	pending chan *quiz.Question
}

// NewPrefetcher creates an idle Prefetcher over src.
func NewPrefetcher(src QuestionSource) *Prefetcher {
	return &Prefetcher{src: src}
}

// Start begins generating a question in the background using a snapshot
// of mistakes. It does nothing if a question is already pending.
func (p *Prefetcher) Start(mistakes []int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending != nil {
		return
	}

	ch := make(chan *quiz.Question, 1)
	p.pending = ch
	snapshot := slices.Clone(mistakes)
	go func() {
		ch <- p.src.Generate(snapshot)
	}()
}

// Pending reports whether a prefetched question is in flight or ready.
func (p *Prefetcher) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}

// Take returns the pending question, waiting for it if needed. With
// nothing pending it generates one synchronously from mistakes. A
// pending question is returned as is even if mistakes changed since
// Start.
func (p *Prefetcher) Take(mistakes []int) *quiz.Question {
	p.mu.Lock()
	ch := p.pending
	p.pending = nil
	p.mu.Unlock()

	if ch == nil {
		return p.src.Generate(mistakes)
	}
	return <-ch
}

// Discard drops any pending question. The background generation, if
// still running, completes into a buffered channel nobody reads.
func (p *Prefetcher) Discard() {
	p.mu.Lock()
	p.pending = nil
	p.mu.Unlock()
}

// handOff moves the pending question, if any, into dst and leaves p idle.
func (p *Prefetcher) handOff(dst *Prefetcher) {
	p.mu.Lock()
	ch := p.pending
	p.pending = nil
	p.mu.Unlock()
	if ch == nil {
		return
	}

	dst.mu.Lock()
	if dst.pending == nil {
		dst.pending = ch
	}
	dst.mu.Unlock()
}
