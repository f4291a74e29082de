package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"communitysite/internal/domain"
)

// BackgroundRunner runs fire-and-forget tasks after the request that scheduled them
// has been answered. Tasks are detached from request cancellation, bounded by a timeout
// and tracked so Shutdown can wait for them. Nothing is persisted: a task still pending
// when the process exits is lost.
type BackgroundRunner struct {
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	closing bool
	wg      sync.WaitGroup
}

var _ domain.TaskRunner = (*BackgroundRunner)(nil)

// NewBackgroundRunner returns a runner whose tasks each get at most timeout to finish.
func NewBackgroundRunner(timeout time.Duration, logger *slog.Logger) *BackgroundRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundRunner{timeout: timeout, logger: logger}
}

// Go starts task in its own goroutine and returns immediately. The task context keeps
// the values of ctx but not its cancellation. Errors and panics are logged, never returned.
func (r *BackgroundRunner) Go(ctx context.Context, name string, task func(ctx context.Context) error) {
	r.mu.Lock()
	if r.closing {
		r.mu.Unlock()
		r.logger.WarnContext(ctx, "background task dropped during shutdown", "task", name)
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	detached := context.WithoutCancel(ctx)
	go func() {
		defer r.wg.Done()
		taskCtx, cancel := context.WithTimeout(detached, r.timeout)
		defer cancel()

		start := time.Now()
		err := r.run(taskCtx, task)
		attrs := []any{"task", name, "duration_ms", time.Since(start).Milliseconds()}
		if err != nil {
			r.logger.ErrorContext(taskCtx, "background task failed", append(attrs, "error", err)...)
			return
		}
		r.logger.InfoContext(taskCtx, "background task completed", attrs...)
	}()
}

func (r *BackgroundRunner) run(ctx context.Context, task func(ctx context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v\n%s", p, debug.Stack())
		}
	}()
	return task(ctx)
}

// Shutdown stops accepting tasks and waits for in-flight ones until ctx is done.
func (r *BackgroundRunner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closing = true
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("background tasks still running: %w", ctx.Err())
	}
}
