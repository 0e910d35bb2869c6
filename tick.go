package tickerx

import (
	"log/slog"

	"github.com/comalice/tickerx/easing"
)

// StopSignal is returned by a tick's stop predicate once per advance.
type StopSignal int

const (
	// Continue lets the tick run normally.
	Continue StopSignal = iota
	// Stop ends the tick on this advance without reaching its final value.
	// OnDone does not fire.
	Stop
	// StopMoveToEnd snaps the tick to its final value and completes it on
	// this advance. OnDone fires.
	StopMoveToEnd
)

func (s StopSignal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	case StopMoveToEnd:
		return "stop-move-to-end"
	default:
		return "unknown"
	}
}

// TickOptions holds the optional parts of a tick. The zero value is a silent
// linear tick.
type TickOptions struct {
	Easing    easing.Func
	OnStart   func()
	OnUpdate  func(value float32)
	OnDone    func()
	CheckStop func() StopSignal
	// Logger receives recovered callback panics. The scheduler fills it in
	// on submit when unset.
	Logger *slog.Logger
}

// Tick is a single time-bounded interpolation. It is a value type: the
// scheduler stores ticks directly in its slot array and advances them in
// place.
type Tick struct {
	from     float32
	to       float32
	duration float32
	elapsed  float32

	easing    easing.Func
	onStart   func()
	onUpdate  func(float32)
	onDone    func()
	checkStop func() StopSignal
	logger    *slog.Logger

	active        bool
	starting      bool
	stopping      bool
	stopRequested bool
}

// NewTick creates an active tick that has not started yet. A duration <= 0
// completes on the first advance.
func NewTick(from, to, duration float32, opts TickOptions) Tick {
	ease := opts.Easing
	if ease == nil {
		ease = easing.Linear
	}
	return Tick{
		from:      from,
		to:        to,
		duration:  duration,
		easing:    ease,
		onStart:   opts.OnStart,
		onUpdate:  opts.OnUpdate,
		onDone:    opts.OnDone,
		checkStop: opts.CheckStop,
		logger:    opts.Logger,
		active:    true,
		starting:  true,
	}
}

// Active reports whether the tick still occupies its slot.
func (t *Tick) Active() bool { return t.active }

// Elapsed returns the accumulated time.
func (t *Tick) Elapsed() float32 { return t.elapsed }

// Duration returns the tick's lifespan.
func (t *Tick) Duration() float32 { return t.duration }

// Advance processes dt worth of time and reports whether the tick is still
// active afterwards. Advancing an inactive tick does nothing.
//
// Order within one call: stop predicate, OnStart (first call only),
// OnUpdate, OnDone (on completion).
func (t *Tick) Advance(dt float32) bool {
	if !t.active {
		return false
	}

	t.elapsed += dt

	if t.checkStop != nil {
		if sig := t.pollStop(); sig != Continue {
			t.RequestStop(sig == StopMoveToEnd)
		}
	}

	// A plain stop never completes, even when time ran out this frame.
	reached := t.elapsed >= t.duration
	done := reached && !t.stopping

	var value float32
	if reached {
		value = t.to
	} else {
		value = t.ease(t.elapsed)
	}

	if t.starting {
		t.starting = false
		t.invoke("onStart", t.onStart)
	}

	if t.onUpdate != nil {
		t.invokeUpdate(value)
	}

	if done {
		t.invoke("onDone", t.onDone)
	}

	if done || t.stopping {
		t.release()
	}
	return t.active
}

// RequestStop ends the tick on its next advance. With moveToEnd the tick
// reports its final value and fires OnDone; without it the tick deactivates
// and OnDone never fires. Only the first request counts.
func (t *Tick) RequestStop(moveToEnd bool) {
	if !t.active || t.stopRequested {
		return
	}
	t.stopRequested = true
	if moveToEnd {
		t.elapsed = max(t.elapsed, t.duration)
		return
	}
	t.stopping = true
}

func (t *Tick) release() {
	*t = Tick{}
}

func (t *Tick) pollStop() (sig StopSignal) {
	defer func() {
		if r := recover(); r != nil {
			t.log().Error("callback panicked", "callback", "checkStop", "panic", r)
			sig = Continue
		}
	}()
	return t.checkStop()
}

func (t *Tick) ease(elapsed float32) (v float32) {
	defer func() {
		if r := recover(); r != nil {
			t.log().Error("easing panicked", "panic", r, "elapsed", elapsed)
			v = easing.Linear(elapsed, t.from, t.to, t.duration)
		}
	}()
	return t.easing(elapsed, t.from, t.to, t.duration)
}

func (t *Tick) invoke(name string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			t.log().Error("callback panicked", "callback", name, "panic", r)
		}
	}()
	fn()
}

func (t *Tick) invokeUpdate(value float32) {
	defer func() {
		if r := recover(); r != nil {
			t.log().Error("callback panicked", "callback", "onUpdate", "panic", r, "value", value)
		}
	}()
	t.onUpdate(value)
}

func (t *Tick) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return slog.Default()
}
