package tickerx

import (
	"log/slog"

	"github.com/emirpasic/gods/v2/queues/arrayqueue"
	"github.com/google/uuid"

	"github.com/comalice/tickerx/easing"
)

// Tracker groups ticks into one cancelable unit. Every tick it submits polls
// the tracker's stop queue, so RequestStop ends the next member that checks,
// in submission order. Pending reports how many members have not finished.
type Tracker struct {
	s       *Scheduler
	name    string
	id      string
	stops   *arrayqueue.Queue[bool]
	pending int
	logger  *slog.Logger
}

// NewTracker creates a tracker that submits to s. An empty name becomes
// "Unknown".
func NewTracker(s *Scheduler, name string) *Tracker {
	if name == "" {
		name = "Unknown"
	}
	id := uuid.New().String()
	return &Tracker{
		s:      s,
		name:   name,
		id:     id,
		stops:  arrayqueue.New[bool](),
		logger: s.logger.With("tracker", name, "tracker_id", id),
	}
}

// Name returns the tracker's name.
func (tr *Tracker) Name() string { return tr.name }

// ID returns the tracker's generated identifier.
func (tr *Tracker) ID() string { return tr.id }

// Pending returns the number of submitted ticks that have neither completed
// nor been stopped.
func (tr *Tracker) Pending() int { return tr.pending }

// PendingStops returns the number of stop requests not yet consumed.
func (tr *Tracker) PendingStops() int { return tr.stops.Size() }

// Tween runs a tracked 0..1 linear tween. Without onUpdate it degrades to
// DelayedAction.
func (tr *Tracker) Tween(duration float32, onUpdate func(float32), onDone, onStart func()) {
	tr.TweenEase(duration, nil, onUpdate, onDone, onStart)
}

// TweenEase runs a tracked 0..1 tween with a custom curve.
func (tr *Tracker) TweenEase(duration float32, ease easing.Func, onUpdate func(float32), onDone, onStart func()) {
	if onUpdate == nil {
		tr.DelayedAction(duration, onDone)
		return
	}
	tr.pending++
	tr.s.Submit(NewTick(0, 1, duration, TickOptions{
		Easing:    ease,
		CheckStop: tr.CheckStop,
		OnUpdate:  onUpdate,
		OnDone:    tr.wrapDone(onDone),
		OnStart:   onStart,
		Logger:    tr.logger,
	}))
}

// DelayedAction calls onDone after delay unless the tracker stops it first.
// A nil onDone is ignored.
func (tr *Tracker) DelayedAction(delay float32, onDone func()) {
	if onDone == nil {
		return
	}
	tr.pending++
	tr.s.Submit(NewTick(0, 1, delay, TickOptions{
		CheckStop: tr.CheckStop,
		OnDone:    tr.wrapDone(onDone),
		Logger:    tr.logger,
	}))
}

// RequestStop asks the next member tick to stop. Requests beyond the number
// of pending ticks are dropped since nothing could consume them.
func (tr *Tracker) RequestStop(moveToEnd bool) {
	if tr.pending == 0 || tr.stops.Size() >= tr.pending {
		return
	}
	tr.stops.Enqueue(moveToEnd)
	tr.logger.Debug("stop requested", "move_to_end", moveToEnd, "pending", tr.pending)
}

// CheckStop is the stop predicate installed on every member tick.
func (tr *Tracker) CheckStop() StopSignal {
	moveToEnd, ok := tr.stops.Dequeue()
	if !ok {
		return Continue
	}
	if moveToEnd {
		// The member completes and its OnDone wrapper does the accounting.
		return StopMoveToEnd
	}
	// A plain stop never reaches OnDone.
	tr.pending--
	return Stop
}

func (tr *Tracker) wrapDone(onDone func()) func() {
	return func() {
		tr.pending--
		if onDone != nil {
			onDone()
		}
	}
}
