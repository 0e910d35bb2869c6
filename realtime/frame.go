package realtime

import "github.com/comalice/tickerx"

// Step runs one frame synchronously: posted functions first, then the
// scheduler. It must only be called while the loop is stopped; the running
// loop calls it itself.
func (l *FrameLoop) Step(dt float32) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("frame panicked", "panic", r, "frame", l.FrameNumber())
		}
	}()

	// Phase 1: Collect posts atomically
	posts := l.collectPosts()

	// Phase 2: Run them on the scheduler's goroutine in arrival order
	l.runPosts(posts)

	// Phase 3: Advance every tick
	l.sched.AdvanceFrame(dt)

	l.frameNum.Add(1)
}

// collectPosts swaps the mailbox with the spare buffer.
func (l *FrameLoop) collectPosts() []func(*tickerx.Scheduler) {
	l.postMu.Lock()
	defer l.postMu.Unlock()

	posts := l.posts
	l.posts = l.spare[:0]
	l.spare = posts
	return posts
}

func (l *FrameLoop) runPosts(posts []func(*tickerx.Scheduler)) {
	for i, fn := range posts {
		l.runPost(fn)
		posts[i] = nil
	}
}

func (l *FrameLoop) runPost(fn func(*tickerx.Scheduler)) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("posted function panicked", "panic", r)
		}
	}()
	fn(l.sched)
}
