package tickerx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/tickerx"
	"github.com/comalice/tickerx/testutil"
)

func TestBuilderEndpointsAndCallbacks(t *testing.T) {
	should := require.New(t)

	s := tickerx.NewScheduler()
	var rec testutil.Recorder
	s.Build(2).
		From(10).
		To(0).
		OnStart(rec.OnStart).
		OnUpdate(rec.OnUpdate).
		OnDone(rec.OnDone).
		Submit()

	testutil.Frames(s, 1, 3)
	should.Equal([]string{"start", "update:5", "update:0", "done"}, rec.Events)
}

func TestBuilderEase(t *testing.T) {
	s := tickerx.NewScheduler()
	var rec testutil.Recorder
	s.Build(4).
		Ease(func(elapsed, from, to, duration float32) float32 { return elapsed * 100 }).
		OnUpdate(rec.OnUpdate).
		Submit()

	testutil.Frames(s, 1, 3)
	require.Equal(t, []float32{100, 200}, rec.Values)
}

func TestBuilderEaseNamed(t *testing.T) {
	should := require.New(t)

	logger, buf := testutil.BufferLogger()
	s := tickerx.NewScheduler(tickerx.WithLogger(logger))

	var known, unknown testutil.Recorder
	s.Build(2).EaseNamed("in-quad").OnUpdate(known.OnUpdate).Submit()
	s.Build(2).EaseNamed("wobble").OnUpdate(unknown.OnUpdate).Submit()
	testutil.Frames(s, 1, 2)

	should.InDelta(0.25, known.Last(), 1e-6)
	should.InDelta(0.5, unknown.Last(), 1e-6, "falls back to linear")
	should.Contains(buf.String(), "ignoring easing")
}

func TestBuilderUntil(t *testing.T) {
	s := tickerx.NewScheduler()
	var rec testutil.Recorder
	s.Build(10).
		Until(func() tickerx.StopSignal { return tickerx.StopMoveToEnd }).
		OnDone(rec.OnDone).
		Submit()

	testutil.Frames(s, 0, 2)
	require.Equal(t, 1, rec.Dones)
}

func TestBuilderTickDoesNotSubmit(t *testing.T) {
	s := tickerx.NewScheduler()
	tk := s.Build(1).From(2).To(4).Tick()

	require.True(t, tk.Active())
	require.Equal(t, float32(1), tk.Duration())
	require.Zero(t, s.Stats().Queued)
}
