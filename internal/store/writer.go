package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrWriterClosed is returned by Save after Close.
var ErrWriterClosed = errors.New("async writer closed")

// writeQueueSize bounds the number of saves buffered ahead of the worker.
const writeQueueSize = 64

type writeOp struct {
	key, value string
	barrier    chan struct{}
}

// AsyncWriter wraps a Gateway so that saves return immediately. A single
// worker goroutine applies them in the order they were issued, so the
// last save to a key wins. Failed writes are logged and dropped.
type AsyncWriter struct {
	gw     Gateway
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	ops    chan writeOp
	done   chan struct{}
}

var _ Gateway = (*AsyncWriter)(nil)

// NewAsyncWriter starts the worker. A nil logger means slog.Default().
func NewAsyncWriter(gw Gateway, logger *slog.Logger) *AsyncWriter {
	if logger == nil {
		logger = slog.Default()
	}
	w := &AsyncWriter{
		gw:     gw,
		logger: logger,
		ops:    make(chan writeOp, writeQueueSize),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *AsyncWriter) run() {
	defer close(w.done)
	for op := range w.ops {
		if op.barrier != nil {
			close(op.barrier)
			continue
		}
		if err := w.gw.Save(context.Background(), op.key, op.value); err != nil {
			w.logger.Warn("background save failed", "key", op.key, "error", err)
		}
	}
}

// Save queues value for key and returns without waiting for the write.
func (w *AsyncWriter) Save(ctx context.Context, key, value string) error {
	return w.enqueue(ctx, writeOp{key: key, value: value})
}

// Load waits for queued saves to land, then reads through.
func (w *AsyncWriter) Load(ctx context.Context, key string) (string, bool, error) {
	if err := w.Flush(ctx); err != nil && !errors.Is(err, ErrWriterClosed) {
		return "", false, err
	}
	return w.gw.Load(ctx, key)
}

// Flush blocks until every save queued before the call has been applied.
func (w *AsyncWriter) Flush(ctx context.Context) error {
	barrier := make(chan struct{})
	if err := w.enqueue(ctx, writeOp{barrier: barrier}); err != nil {
		return err
	}
	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close applies all queued saves and stops the worker. It is idempotent.
func (w *AsyncWriter) Close() error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.ops)
	}
	w.mu.Unlock()
	<-w.done
	return nil
}

func (w *AsyncWriter) enqueue(ctx context.Context, op writeOp) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return ErrWriterClosed
	}
	select {
	case w.ops <- op:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
