// Package testutil holds helpers shared by tickerx tests and benchmarks.
package testutil

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/comalice/tickerx"
)

// Recorder captures tick callbacks in the order they fire.
type Recorder struct {
	Events  []string
	Values  []float32
	Starts  int
	Updates int
	Dones   int
}

// OnStart records a start callback.
func (r *Recorder) OnStart() {
	r.Starts++
	r.Events = append(r.Events, "start")
}

// OnUpdate records an update callback and its value.
func (r *Recorder) OnUpdate(v float32) {
	r.Updates++
	r.Values = append(r.Values, v)
	r.Events = append(r.Events, fmt.Sprintf("update:%g", v))
}

// OnDone records a completion callback.
func (r *Recorder) OnDone() {
	r.Dones++
	r.Events = append(r.Events, "done")
}

// Options returns tick options wired to the recorder.
func (r *Recorder) Options() tickerx.TickOptions {
	return tickerx.TickOptions{
		OnStart:  r.OnStart,
		OnUpdate: r.OnUpdate,
		OnDone:   r.OnDone,
	}
}

// Last returns the most recent update value, or 0 if none.
func (r *Recorder) Last() float32 {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[len(r.Values)-1]
}

// Reset clears everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

// Frames advances s n times by dt.
func Frames(s *tickerx.Scheduler, dt float32, n int) {
	for i := 0; i < n; i++ {
		s.AdvanceFrame(dt)
	}
}

// BufferLogger returns a debug-level text logger and the buffer it writes to.
func BufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
