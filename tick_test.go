package tickerx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/tickerx"
	"github.com/comalice/tickerx/testutil"
)

func TestTickLinearScenario(t *testing.T) {
	should := require.New(t)

	var rec testutil.Recorder
	tk := tickerx.NewTick(0, 10, 2, rec.Options())
	should.True(tk.Active())

	should.True(tk.Advance(1))
	should.Equal([]float32{5}, rec.Values)
	should.Zero(rec.Dones)

	should.False(tk.Advance(1))
	should.Equal([]float32{5, 10}, rec.Values)
	should.Equal(1, rec.Dones)
	should.False(tk.Active())

	should.False(tk.Advance(1))
	should.Equal([]string{"start", "update:5", "update:10", "done"}, rec.Events)
}

func TestTickStartFiresOnceBeforeFirstUpdate(t *testing.T) {
	should := require.New(t)

	var rec testutil.Recorder
	tk := tickerx.NewTick(0, 4, 4, rec.Options())
	for tk.Advance(1) {
	}

	should.Equal(1, rec.Starts)
	should.Equal("start", rec.Events[0])
	should.Equal("update:1", rec.Events[1])
	should.Equal(4, rec.Updates)
}

func TestTickNonPositiveDurationCompletesImmediately(t *testing.T) {
	for _, d := range []float32{0, -1} {
		var rec testutil.Recorder
		tk := tickerx.NewTick(3, 7, d, rec.Options())

		require.False(t, tk.Advance(0), "duration %v", d)
		require.Equal(t, []string{"start", "update:7", "done"}, rec.Events, "duration %v", d)
	}
}

func TestTickInactiveAdvanceIsNoop(t *testing.T) {
	should := require.New(t)

	var zero tickerx.Tick
	should.False(zero.Advance(1))
	should.False(zero.Active())

	var rec testutil.Recorder
	tk := tickerx.NewTick(0, 1, 0, rec.Options())
	tk.Advance(1)
	rec.Reset()

	for i := 0; i < 5; i++ {
		should.False(tk.Advance(1))
	}
	should.Empty(rec.Events)
}

func TestTickStopPredicate(t *testing.T) {
	tests := []struct {
		name       string
		signal     tickerx.StopSignal
		wantEvents []string
	}{
		{
			name:       "stop",
			signal:     tickerx.Stop,
			wantEvents: []string{"start", "update:2.5", "update:5"},
		},
		{
			name:       "stop and move to end",
			signal:     tickerx.StopMoveToEnd,
			wantEvents: []string{"start", "update:2.5", "update:10", "done"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			should := require.New(t)

			var rec testutil.Recorder
			calls := 0
			opts := rec.Options()
			opts.CheckStop = func() tickerx.StopSignal {
				calls++
				if calls == 2 {
					return tt.signal
				}
				return tickerx.Continue
			}
			tk := tickerx.NewTick(0, 10, 4, opts)

			should.True(tk.Advance(1))
			should.False(tk.Advance(1))
			should.False(tk.Advance(1))

			should.Equal(tt.wantEvents, rec.Events)
			should.Equal(2, calls, "predicate is consulted once per advance")
		})
	}
}

func TestTickStopSuppressesDoneWhenTimeRunsOut(t *testing.T) {
	should := require.New(t)

	var rec testutil.Recorder
	opts := rec.Options()
	opts.CheckStop = func() tickerx.StopSignal { return tickerx.Stop }
	tk := tickerx.NewTick(0, 10, 1, opts)

	should.False(tk.Advance(5))
	should.Zero(rec.Dones)
	should.Equal(1, rec.Updates)
}

func TestTickRequestStop(t *testing.T) {
	t.Run("without move to end", func(t *testing.T) {
		var rec testutil.Recorder
		tk := tickerx.NewTick(0, 10, 10, rec.Options())
		tk.Advance(1)
		tk.RequestStop(false)

		require.False(t, tk.Advance(1))
		require.Equal(t, []string{"start", "update:1", "update:2"}, rec.Events)
	})

	t.Run("move to end", func(t *testing.T) {
		var rec testutil.Recorder
		tk := tickerx.NewTick(0, 10, 10, rec.Options())
		tk.RequestStop(true)

		require.False(t, tk.Advance(0.5))
		require.Equal(t, []string{"start", "update:10", "done"}, rec.Events)
	})

	t.Run("first request wins", func(t *testing.T) {
		var rec testutil.Recorder
		tk := tickerx.NewTick(0, 10, 10, rec.Options())
		tk.RequestStop(false)
		tk.RequestStop(true)

		require.False(t, tk.Advance(1))
		require.Zero(t, rec.Dones)
	})

	t.Run("inactive tick ignores request", func(t *testing.T) {
		var tk tickerx.Tick
		tk.RequestStop(true)
		require.False(t, tk.Active())
		require.Zero(t, tk.Elapsed())
	})
}

func TestTickCustomEasing(t *testing.T) {
	var rec testutil.Recorder
	opts := rec.Options()
	opts.Easing = func(elapsed, from, to, duration float32) float32 {
		k := elapsed / duration
		return from + (to-from)*k*k
	}
	tk := tickerx.NewTick(0, 100, 2, opts)

	tk.Advance(1)
	tk.Advance(1)
	require.Equal(t, []float32{25, 100}, rec.Values)
}

func TestTickRecoversCallbackPanics(t *testing.T) {
	should := require.New(t)

	logger, buf := testutil.BufferLogger()
	updates, dones := 0, 0
	tk := tickerx.NewTick(0, 1, 2, tickerx.TickOptions{
		OnStart: func() { panic("start") },
		OnUpdate: func(float32) {
			updates++
			panic("update")
		},
		OnDone: func() {
			dones++
			panic("done")
		},
		Logger: logger,
	})

	should.NotPanics(func() {
		should.True(tk.Advance(1))
		should.False(tk.Advance(1))
	})
	should.Equal(2, updates)
	should.Equal(1, dones)
	should.False(tk.Active())

	out := buf.String()
	should.Contains(out, "callback panicked")
	should.Contains(out, "callback=onStart")
	should.Contains(out, "callback=onUpdate")
	should.Contains(out, "callback=onDone")
}

func TestTickRecoversPredicateAndEasingPanics(t *testing.T) {
	should := require.New(t)

	logger, buf := testutil.BufferLogger()
	var rec testutil.Recorder
	opts := rec.Options()
	opts.Logger = logger
	opts.CheckStop = func() tickerx.StopSignal { panic("check") }
	opts.Easing = func(float32, float32, float32, float32) float32 { panic("ease") }
	tk := tickerx.NewTick(0, 10, 2, opts)

	should.True(tk.Advance(1))
	should.Equal([]float32{5}, rec.Values, "falls back to linear")
	should.False(tk.Advance(1))
	should.Equal(1, rec.Dones)

	should.Contains(buf.String(), "callback=checkStop")
	should.Contains(buf.String(), "easing panicked")
}

func TestStopSignalString(t *testing.T) {
	require.Equal(t, "continue", tickerx.Continue.String())
	require.Equal(t, "stop", tickerx.Stop.String())
	require.Equal(t, "stop-move-to-end", tickerx.StopMoveToEnd.String())
	require.Equal(t, "unknown", tickerx.StopSignal(42).String())
}
