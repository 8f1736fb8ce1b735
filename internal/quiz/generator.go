package quiz

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/engpower/internal/bank"
)

// Generator builds questions from a bank. It is safe for concurrent use;
// the random source is the only mutable state and is guarded by a mutex.
type Generator struct {
	bank   *bank.Bank
	cfg    Config
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand sets the random source. Tests use a seeded PCG source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithLogger sets the logger used for data-integrity warnings.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator over b. The bank must already be validated.
func New(b *bank.Bank, cfg Config, opts ...Option) *Generator {
	g := &Generator{
		bank:   b,
		cfg:    cfg,
		logger: slog.Default(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Bank returns the bank questions are drawn from.
func (g *Generator) Bank() *bank.Bank {
	return g.bank
}

// Generate returns a new question. When mistakes is non-empty, the focus
// item is drawn from it with probability ReviewProbability. The mistakes
// slice is only read.
func (g *Generator) Generate(mistakes []int) *Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	item := g.pickFocus(mistakes)
	distractors := g.pickDistractors(item)

	var opts [NumOptions]string
	opts[0] = item.Target
	copy(opts[1:], distractors)
	g.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})

	return &Question{
		ReviewID:        item.ID,
		Prompt:          promptFor(item.Source),
		ContextTemplate: contextFor(item.Source, Blank),
		FullText:        contextFor(item.Source, item.Target),
		CorrectAnswer:   item.Target,
		Options:         opts,
		Hint:            item.Source,
	}
}

func (g *Generator) pickFocus(mistakes []int) bank.Item {
	if len(mistakes) > 0 && g.rng.Float64() < g.cfg.ReviewProbability {
		id := mistakes[g.rng.IntN(len(mistakes))]
		if it, ok := g.bank.Get(id); ok {
			return it
		}
		g.logger.Debug("mistake id not in bank, picking random item", "id", id)
	}
	return g.bank.At(g.rng.IntN(g.bank.Len()))
}

// pickDistractors draws NumOptions-1 texts that differ from the focus
// answer and from each other. Same-category items are preferred when
// there are enough of them; the whole bank backs up any shortfall.
func (g *Generator) pickDistractors(focus bank.Item) []string {
	var pools [][]bank.Item
	if same := g.bank.Except(focus.ID, focus.Category); len(same) >= NumOptions-1 {
		pools = append(pools, same)
	}
	pools = append(pools, g.bank.Except(focus.ID, ""))

	seen := map[string]bool{focus.Target: true}
	out := make([]string, 0, NumOptions-1)
	for _, pool := range pools {
		for _, i := range g.rng.Perm(len(pool)) {
			text := pool[i].Target
			if seen[text] {
				continue
			}
			seen[text] = true
			out = append(out, text)
			if len(out) == NumOptions-1 {
				return out
			}
		}
	}
	return out
}
