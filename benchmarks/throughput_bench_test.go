// Package benchmarks provides performance benchmarks for frame throughput.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/tickerx"
	"github.com/comalice/tickerx/easing"
)

const dt = 1.0 / 60

func BenchmarkAdvanceFrame(b *testing.B) {
	for _, n := range []int{10, 100, 1000, 10000} {
		b.Run(fmt.Sprintf("active=%d", n), func(b *testing.B) {
			s := NewScheduler(n)
			FillActive(s, n, nil)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.AdvanceFrame(dt)
			}
			b.ReportMetric(float64(n)*float64(b.N)/b.Elapsed().Seconds(), "ticks/s")
		})
	}
}

func BenchmarkAdvanceFrameEasing(b *testing.B) {
	script, err := easing.Compile("from + (to - from) * (t / d) * (t / d)")
	if err != nil {
		b.Fatal(err)
	}
	outBounce, err := easing.ByName("out-bounce")
	if err != nil {
		b.Fatal(err)
	}
	curves := []struct {
		name string
		f    easing.Func
	}{
		{"linear", easing.Linear},
		{"out-bounce", outBounce},
		{"script", script},
	}
	for _, c := range curves {
		b.Run(c.name, func(b *testing.B) {
			s := NewScheduler(100)
			FillActive(s, 100, c.f)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.AdvanceFrame(dt)
			}
		})
	}
}

// Every frame one zero-length tick completes and the next reuses its slot.
func BenchmarkSubmitReuse(b *testing.B) {
	s := NewScheduler(16)
	tk := tickerx.NewTick(0, 1, 0, tickerx.TickOptions{OnUpdate: sink})
	for i := 0; i < 4; i++ {
		s.Submit(tk)
		s.AdvanceFrame(dt)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Submit(tk)
		s.AdvanceFrame(dt)
	}
}

func BenchmarkSubmitBurst(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("burst=%d", n), func(b *testing.B) {
			s := NewScheduler(n)
			tk := tickerx.NewTick(0, 1, 0, tickerx.TickOptions{OnUpdate: sink})
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < n; j++ {
					s.Submit(tk)
				}
				s.AdvanceFrame(dt) // placed
				s.AdvanceFrame(dt) // completed, slots free again
			}
		})
	}
}

func BenchmarkTrackerTween(b *testing.B) {
	s := NewScheduler(64)
	tr := tickerx.NewTracker(s, "bench")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Tween(dt, sink, nil, nil)
		s.AdvanceFrame(dt)
	}
	b.StopTimer()
	for tr.Pending() > 0 {
		s.AdvanceFrame(dt)
	}
}
