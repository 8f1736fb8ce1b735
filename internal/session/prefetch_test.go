package session

import (
	"slices"
	"sync"
	"testing"

	"github.com/abhisek/engpower/internal/quiz"
	"github.com/stretchr/testify/assert"
)

// countingSource returns questions whose ReviewID is the call number and
// records the mistakes each call saw. Generation blocks until release
// is closed, when set.
type countingSource struct {
	mu      sync.Mutex
	calls   int
	seen    [][]int
	release chan struct{}
}

func (c *countingSource) Generate(mistakes []int) *quiz.Question {
	if c.release != nil {
		<-c.release
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.seen = append(c.seen, slices.Clone(mistakes))
	return &quiz.Question{ReviewID: c.calls}
}

func (c *countingSource) Seen() [][]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.seen)
}

func (c *countingSource) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestPrefetcher_TakeWithoutStartGeneratesSynchronously(t *testing.T) {
	src := &countingSource{}
	p := NewPrefetcher(src)

	q := p.Take([]int{4})
	assert.Equal(t, 1, q.ReviewID)
	assert.Equal(t, [][]int{{4}}, src.seen)
	assert.False(t, p.Pending())
}

func TestPrefetcher_StartIsNoOpWhilePending(t *testing.T) {
	src := &countingSource{release: make(chan struct{})}
	p := NewPrefetcher(src)

	p.Start(nil)
	p.Start(nil)
	p.Start(nil)
	assert.True(t, p.Pending())

	close(src.release)
	q := p.Take(nil)
	assert.Equal(t, 1, q.ReviewID)
	assert.Equal(t, 1, src.Calls())
	assert.False(t, p.Pending())
}

func TestPrefetcher_ServesStaleQuestion(t *testing.T) {
	src := &countingSource{}
	p := NewPrefetcher(src)

	mistakes := []int{1}
	p.Start(mistakes)
	mistakes[0] = 99

	p.Take([]int{2, 3})
	assert.Equal(t, [][]int{{1}}, src.seen, "prefetch uses a snapshot of the mistakes at Start")
}

func TestPrefetcher_Discard(t *testing.T) {
	src := &countingSource{}
	p := NewPrefetcher(src)

	p.Start(nil)
	p.Discard()
	assert.False(t, p.Pending())

	// Take after Discard must not consume the dropped question.
	q := p.Take([]int{5})
	assert.NotNil(t, q)
	assert.Contains(t, src.Seen(), []int{5})
}

func TestPrefetcher_HandOff(t *testing.T) {
	src := &countingSource{}
	from := NewPrefetcher(src)
	to := NewPrefetcher(src)

	from.Start(nil)
	from.handOff(to)
	assert.False(t, from.Pending())
	assert.True(t, to.Pending())

	q := to.Take([]int{1})
	assert.Equal(t, 1, q.ReviewID)
	assert.Equal(t, 1, src.Calls())
}
