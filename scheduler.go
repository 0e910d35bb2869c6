package tickerx

import (
	"log/slog"

	"github.com/comalice/tickerx/easing"
	"github.com/comalice/tickerx/internal/ring"
)

// Scheduler advances a pool of ticks once per frame.
//
// Ticks live by value in a slot array that only grows. Submissions go to a
// "next" queue; every frame the queues swap roles and the walk over the
// slots drains the "current" one into free slots. Work submitted from a
// callback during the walk therefore waits for the following frame.
//
// A Scheduler is not safe for concurrent use. Drive it from one goroutine,
// or use realtime.FrameLoop which owns one.
type Scheduler struct {
	slots   []Tick
	current *ring.Queue[Tick]
	next    *ring.Queue[Tick]

	paused bool
	frame  uint64

	capacity      int
	queueCapacity int
	logger        *slog.Logger
}

// NewScheduler creates an empty scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		capacity:      defaultCapacity,
		queueCapacity: 64,
		logger:        slog.Default().With("component", "ticker"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.slots = make([]Tick, 0, s.capacity)
	s.current = ring.New[Tick](s.queueCapacity)
	s.next = ring.New[Tick](s.queueCapacity)
	return s
}

// Submit queues a tick. It never blocks and is safe to call from inside a
// tick callback; the tick is first placed on the next frame.
func (s *Scheduler) Submit(t Tick) {
	if !t.active {
		return
	}
	if t.logger == nil {
		t.logger = s.logger
	}
	s.next.Push(t)
}

// AdvanceFrame is the per-frame entry point. dt is trusted as supplied.
// Callbacks must not call AdvanceFrame.
func (s *Scheduler) AdvanceFrame(dt float32) {
	if s.paused {
		return
	}

	s.current, s.next = s.next, s.current
	s.frame++

	for i, n := 0, len(s.slots); i < n; i++ {
		slot := &s.slots[i]
		if slot.active {
			slot.Advance(dt)
			continue
		}
		if t, ok := s.current.Pop(); ok {
			*slot = t
		}
	}

	for s.current.Len() > 0 {
		t, _ := s.current.Pop()
		s.slots = append(s.slots, t)
	}
}

// Pause stops time for every tick. While paused AdvanceFrame does nothing.
func (s *Scheduler) Pause() { s.paused = true }

// Resume undoes Pause.
func (s *Scheduler) Resume() { s.paused = false }

// SetPaused sets the pause flag.
func (s *Scheduler) SetPaused(paused bool) { s.paused = paused }

// IsPaused reports whether the scheduler is paused.
func (s *Scheduler) IsPaused() bool { return s.paused }

// FrameNumber returns the number of unpaused frames processed.
func (s *Scheduler) FrameNumber() uint64 { return s.frame }

// Logger returns the scheduler's logger.
func (s *Scheduler) Logger() *slog.Logger { return s.logger }

// Tween runs a 0..1 linear tween.
func (s *Scheduler) Tween(duration float32, onUpdate func(float32), onDone, onStart func()) {
	s.Submit(NewTick(0, 1, duration, TickOptions{
		OnUpdate: onUpdate,
		OnDone:   onDone,
		OnStart:  onStart,
	}))
}

// TweenEase runs a 0..1 tween with a custom curve.
func (s *Scheduler) TweenEase(duration float32, ease easing.Func, onUpdate func(float32), onDone, onStart func()) {
	s.Submit(NewTick(0, 1, duration, TickOptions{
		Easing:   ease,
		OnUpdate: onUpdate,
		OnDone:   onDone,
		OnStart:  onStart,
	}))
}

// TweenUntil runs a 0..1 linear tween that consults checkStop every frame.
func (s *Scheduler) TweenUntil(duration float32, checkStop func() StopSignal, onUpdate func(float32), onDone, onStart func()) {
	s.Submit(NewTick(0, 1, duration, TickOptions{
		CheckStop: checkStop,
		OnUpdate:  onUpdate,
		OnDone:    onDone,
		OnStart:   onStart,
	}))
}

// TweenEaseUntil combines TweenEase and TweenUntil.
func (s *Scheduler) TweenEaseUntil(duration float32, ease easing.Func, checkStop func() StopSignal, onUpdate func(float32), onDone, onStart func()) {
	s.Submit(NewTick(0, 1, duration, TickOptions{
		Easing:    ease,
		CheckStop: checkStop,
		OnUpdate:  onUpdate,
		OnDone:    onDone,
		OnStart:   onStart,
	}))
}

// DelayedAction calls onDone once delay has elapsed.
func (s *Scheduler) DelayedAction(delay float32, onDone func()) {
	s.Submit(NewTick(0, 1, delay, TickOptions{OnDone: onDone}))
}
