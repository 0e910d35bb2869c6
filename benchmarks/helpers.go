// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"github.com/comalice/tickerx"
	"github.com/comalice/tickerx/easing"
	"github.com/comalice/tickerx/internal/logging"
)

// Sink receives tween values so the compiler keeps the callbacks.
var Sink float32

func sink(v float32) { Sink = v }

// NewScheduler returns a scheduler with a discard logger and room for n slots.
func NewScheduler(n int) *tickerx.Scheduler {
	return tickerx.NewScheduler(tickerx.WithLogger(logging.Discard()), tickerx.WithCapacity(n))
}

// LongTick returns a tick that outlives any benchmark run at 60 FPS.
func LongTick(ease easing.Func) tickerx.Tick {
	return tickerx.NewTick(0, 1, 1e9, tickerx.TickOptions{Easing: ease, OnUpdate: sink})
}

// FillActive submits n long ticks and advances one frame so every one of
// them occupies a slot.
func FillActive(s *tickerx.Scheduler, n int, ease easing.Func) {
	for i := 0; i < n; i++ {
		s.Submit(LongTick(ease))
	}
	s.AdvanceFrame(0)
}
