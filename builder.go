package tickerx

import "github.com/comalice/tickerx/easing"

// TweenBuilder provides a fluent API for ticks that need more than the
// Tween/TweenEase shorthands, such as custom endpoints.
//
//	s.Build(0.5).From(1).To(0).Ease(fade).OnUpdate(setAlpha).Submit()
type TweenBuilder struct {
	s        *Scheduler
	from, to float32
	duration float32
	opts     TickOptions
}

// Build starts a 0..1 linear tween description of the given duration.
func (s *Scheduler) Build(duration float32) *TweenBuilder {
	return &TweenBuilder{s: s, to: 1, duration: duration}
}

// From sets the start value.
func (b *TweenBuilder) From(v float32) *TweenBuilder {
	b.from = v
	return b
}

// To sets the end value.
func (b *TweenBuilder) To(v float32) *TweenBuilder {
	b.to = v
	return b
}

// Ease sets the curve. nil keeps linear.
func (b *TweenBuilder) Ease(f easing.Func) *TweenBuilder {
	b.opts.Easing = f
	return b
}

// EaseNamed sets a registered curve by name. Unknown names keep linear and
// are reported through the scheduler's logger.
func (b *TweenBuilder) EaseNamed(name string) *TweenBuilder {
	f, err := easing.ByName(name)
	if err != nil {
		b.s.logger.Warn("ignoring easing", "error", err)
		return b
	}
	b.opts.Easing = f
	return b
}

// Until installs a stop predicate.
func (b *TweenBuilder) Until(check func() StopSignal) *TweenBuilder {
	b.opts.CheckStop = check
	return b
}

// OnStart sets the start callback.
func (b *TweenBuilder) OnStart(f func()) *TweenBuilder {
	b.opts.OnStart = f
	return b
}

// OnUpdate sets the per-frame callback.
func (b *TweenBuilder) OnUpdate(f func(float32)) *TweenBuilder {
	b.opts.OnUpdate = f
	return b
}

// OnDone sets the completion callback.
func (b *TweenBuilder) OnDone(f func()) *TweenBuilder {
	b.opts.OnDone = f
	return b
}

// Tick returns the described tick without submitting it.
func (b *TweenBuilder) Tick() Tick {
	return NewTick(b.from, b.to, b.duration, b.opts)
}

// Submit queues the described tick on the scheduler.
func (b *TweenBuilder) Submit() {
	b.s.Submit(b.Tick())
}
