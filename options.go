package tickerx

import "log/slog"

// defaultCapacity matches the slot count a typical scene keeps alive.
const defaultCapacity = 1000

// Option applies configuration to a Scheduler via functional options pattern.
type Option func(*Scheduler)

// WithLogger sets the sink for recovered callback panics. Without it the
// scheduler logs through slog.Default at construction time.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger.With("component", "ticker")
		}
	}
}

// WithCapacity sets the initial slot capacity. Values < 1 are ignored.
func WithCapacity(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithQueueCapacity sets the initial size of each submission queue.
// Values < 1 are ignored.
func WithQueueCapacity(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.queueCapacity = n
		}
	}
}

// WithPaused creates the scheduler in the paused state.
func WithPaused(paused bool) Option {
	return func(s *Scheduler) {
		s.paused = paused
	}
}
