package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/comalice/tickerx"
)

var (
	// ErrAlreadyStarted is returned by Start on a running loop.
	ErrAlreadyStarted = errors.New("frame loop already started")
	// ErrNotRunning is returned when the loop is required to be running.
	ErrNotRunning = errors.New("frame loop not running")
	// ErrPostQueueFull is returned by Post once MaxPostsPerFrame is reached.
	ErrPostQueueFull = errors.New("post queue full")
)

// FrameLoop drives a Scheduler at a fixed frame rate from its own goroutine.
// It is the only goroutine that touches the scheduler while running; other
// goroutines reach it through Post and Call.
type FrameLoop struct {
	sched     *tickerx.Scheduler
	frameRate time.Duration
	fixedStep bool
	logger    *slog.Logger
	now       func() time.Time

	// Mailbox drained at the start of every frame
	posts    []func(*tickerx.Scheduler)
	spare    []func(*tickerx.Scheduler)
	postMu   sync.Mutex
	maxPosts int

	frameNum atomic.Uint64

	// Control
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	stopped chan struct{}
	last    time.Time
}

// Config configures the frame loop.
type Config struct {
	FrameRate        time.Duration // Frame period (default 16.667ms, 60 FPS)
	FixedStep        bool          // Pass FrameRate as dt instead of measured wall time
	MaxPostsPerFrame int           // Mailbox capacity (default 1000)
}

// NewFrameLoop creates a stopped loop around s.
func NewFrameLoop(s *tickerx.Scheduler, cfg Config, logger *slog.Logger) *FrameLoop {
	if cfg.MaxPostsPerFrame <= 0 {
		cfg.MaxPostsPerFrame = 1000
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 16667 * time.Microsecond
	}
	if logger == nil {
		logger = s.Logger()
	}

	return &FrameLoop{
		sched:     s,
		frameRate: cfg.FrameRate,
		fixedStep: cfg.FixedStep,
		logger:    logger.With("component", "frameloop"),
		now:       time.Now,
		posts:     make([]func(*tickerx.Scheduler), 0, cfg.MaxPostsPerFrame),
		spare:     make([]func(*tickerx.Scheduler), 0, cfg.MaxPostsPerFrame),
		maxPosts:  cfg.MaxPostsPerFrame,
	}
}

// Start begins frame execution. The loop stops when ctx is cancelled or
// Stop is called.
func (l *FrameLoop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return ErrAlreadyStarted
	}
	if l.cancel != nil {
		// Previous run ended with its context; release it.
		l.cancel()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.stopped = make(chan struct{})
	l.running = true
	l.last = l.now()

	l.logger.Info("frame loop started", "frame_rate", l.frameRate, "fixed_step", l.fixedStep)
	go l.run(loopCtx, l.stopped)
	return nil
}

// Stop cancels the loop and waits for the current frame to finish. A loop
// whose context was cancelled still needs Stop to be reaped and reports
// success once.
func (l *FrameLoop) Stop() error {
	l.mu.Lock()
	cancel, stopped := l.cancel, l.stopped
	if cancel == nil {
		l.mu.Unlock()
		return ErrNotRunning
	}
	l.running = false
	l.cancel, l.stopped = nil, nil
	l.mu.Unlock()

	cancel()
	<-stopped
	l.logger.Info("frame loop stopped", "frames", l.FrameNumber())
	return nil
}

// Running reports whether the loop goroutine is active. It turns false as
// soon as the loop exits, whether through Stop or its context.
func (l *FrameLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// FrameNumber returns the number of frames stepped. Safe from any goroutine.
func (l *FrameLoop) FrameNumber() uint64 {
	return l.frameNum.Load()
}

func (l *FrameLoop) run(ctx context.Context, stopped chan struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(l.frameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.exited(stopped)
			return
		case <-ticker.C:
			l.Step(l.delta())
		}
	}
}

// exited clears running unless a newer Start already replaced this run.
func (l *FrameLoop) exited(stopped chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped == stopped {
		l.running = false
	}
}

// runState returns the current run's stop channel, or nil when no loop
// goroutine is active.
func (l *FrameLoop) runState() chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return nil
	}
	return l.stopped
}

func (l *FrameLoop) delta() float32 {
	now := l.now()
	dt := now.Sub(l.last)
	l.last = now
	if l.fixedStep {
		dt = l.frameRate
	}
	return float32(dt.Seconds())
}
