// Package tickerx schedules per-frame interpolations ("ticks").
//
// A host loop calls Scheduler.AdvanceFrame once per frame with the frame's
// delta time. Every active tick accumulates that time, computes its eased
// value and notifies its callbacks:
//
//	s := tickerx.NewScheduler(tickerx.WithLogger(logger))
//	s.Build(0.25).From(0).To(1).OnUpdate(setAlpha).OnDone(show).Submit()
//
//	for running {
//		s.AdvanceFrame(dt)
//	}
//
// # Frame semantics
//
// Submissions land in a "next" queue. At the start of each frame the queue
// pair swaps and the scheduler walks its slot array once, in index order:
// active slots advance, free slots take the next queued tick. Leftover
// queued ticks are appended as new slots. A tick submitted from a callback
// during the walk is never visited in that same frame.
//
// A tick fires OnStart on its first advance, OnUpdate every advance and
// OnDone on the advance where elapsed reaches duration. A stop predicate may
// end it early: Stop deactivates without OnDone, StopMoveToEnd reports the
// final value and fires OnDone in the same advance.
//
// Panics from callbacks or easing functions are recovered and logged; the
// tick's own bookkeeping carries on.
//
// # Groups
//
// Tracker submits ticks that share a stop queue, so a caller can cancel a
// sequence one member at a time and watch how many are still pending.
package tickerx
