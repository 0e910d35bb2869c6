package realtime

import (
	"context"

	"github.com/comalice/tickerx"
)

// Post queues fn to run on the loop goroutine at the start of the next
// frame, before the scheduler advances. Safe from any goroutine.
func (l *FrameLoop) Post(fn func(*tickerx.Scheduler)) error {
	l.postMu.Lock()
	defer l.postMu.Unlock()

	if len(l.posts) >= l.maxPosts {
		return ErrPostQueueFull
	}
	l.posts = append(l.posts, fn)
	return nil
}

// Call posts fn and waits until it has run, the loop exits, or ctx is done.
func (l *FrameLoop) Call(ctx context.Context, fn func(*tickerx.Scheduler)) error {
	stopped := l.runState()
	if stopped == nil {
		return ErrNotRunning
	}

	done := make(chan struct{})
	err := l.Post(func(s *tickerx.Scheduler) {
		defer close(done)
		fn(s)
	})
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-stopped:
		select {
		case <-done:
			return nil
		default:
			return ErrNotRunning
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit posts a tick submission.
func (l *FrameLoop) Submit(t tickerx.Tick) error {
	return l.Post(func(s *tickerx.Scheduler) { s.Submit(t) })
}

// SetPaused posts a pause toggle.
func (l *FrameLoop) SetPaused(paused bool) error {
	return l.Post(func(s *tickerx.Scheduler) { s.SetPaused(paused) })
}
