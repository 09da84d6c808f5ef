package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/khmm12/chats-service/internal/common/logging"
	"github.com/khmm12/chats-service/internal/common/tracing"
)

type Task interface {
	Execute(ctx context.Context) error
}

type Options struct {
	// RunImmediately runs the task once on start instead of waiting for the first tick.
	RunImmediately bool
}

type Worker struct {
	logger *slog.Logger

	interval time.Duration
	task     Task
	opts     Options

	cancelMu sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	stopped  bool

	mu sync.Mutex
}

func NewWorker(logger *slog.Logger, interval time.Duration, task Task, opts Options) *Worker {
	return &Worker{
		logger:   logger,
		interval: interval,
		task:     task,
		opts:     opts,
	}
}

// Start blocks until Shutdown is called.
func (w *Worker) Start() error {
	if w.interval <= 0 {
		return fmt.Errorf("worker interval must be greater than zero")
	}

	locked := w.mu.TryLock()
	if !locked {
		return fmt.Errorf("worker is already running")
	}

	defer w.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.cancelMu.Lock()
	if w.stopped {
		w.cancelMu.Unlock()
		return nil
	}
	done := make(chan struct{})
	w.cancel = cancel
	w.done = done
	w.cancelMu.Unlock()

	defer close(done)

	ticker := newTicker(w.interval, w.opts.RunImmediately)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := w.run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				w.logger.ErrorContext(ctx, "Failed to execute task", logging.Error(err))
			}
		}
	}
}

// Shutdown stops the loop and waits for an in-flight task to return, or for ctx to expire.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.cancelMu.Lock()
	w.stopped = true

	if w.cancel != nil {
		w.cancel()
	}

	done := w.done
	w.cancelMu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker did not stop in time: %w", ctx.Err())
	}
}

func (w *Worker) run(ctx context.Context) error {
	return w.task.Execute(tracing.WithTraceID(ctx))
}

type ticker struct {
	C    <-chan time.Time
	stop func()
}

func (t *ticker) Stop() {
	t.stop()
}

func newTicker(repeat time.Duration, immediate bool) *ticker {
	tt := time.NewTicker(repeat)
	if !immediate {
		return &ticker{C: tt.C, stop: tt.Stop}
	}

	done := make(chan struct{})
	nc := make(chan time.Time, 1)
	nc <- time.Now()

	go func() {
		for {
			select {
			case <-done:
				return
			case tm := <-tt.C:
				select {
				case nc <- tm:
				default:
				}
			}
		}
	}()

	return &ticker{
		C: nc,
		stop: func() {
			tt.Stop()
			close(done)
		},
	}
}
