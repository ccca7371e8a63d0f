package layout

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSchedulerRunning is returned when Start is called on a running
// scheduler.
var ErrSchedulerRunning = errors.New("scheduler already running")

// Scheduler drives the per-frame callback loop for headless embedders.
// It replaces implicit self-rescheduling callbacks with an explicit,
// cancellable object: Stop (or context cancellation) prevents any further
// frames from being scheduled, and tests can bypass it entirely by calling
// the step function directly.
type Scheduler struct {
	interval time.Duration
	step     func()

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewScheduler creates a scheduler firing step every interval.
func NewScheduler(interval time.Duration, step func()) *Scheduler {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &Scheduler{interval: interval, step: step}
}

// Start begins scheduling frames until Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrSchedulerRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.run(ctx)
	return nil
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Re-check before stepping so no frame runs after
			// cancellation.
			select {
			case <-ctx.Done():
				return
			default:
			}
			s.step()
		}
	}
}

// Stop cancels the loop and waits for the in-flight frame, if any, to
// finish. Safe to call on a stopped scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.running = false
	s.mu.Unlock()

	cancel()
	<-done
}

// Running reports whether the loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
