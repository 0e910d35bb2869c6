// Package realtime drives a tickerx.Scheduler from a fixed-rate frame loop.
//
// The scheduler itself is single-threaded and expects an external driver
// that calls AdvanceFrame once per frame. FrameLoop is that driver for
// programs without a host engine loop:
//   - One goroutine owns the scheduler and steps it every FrameRate
//   - Other goroutines hand work to it through Post and Call
//   - Posted functions run in arrival order at the start of a frame
//   - dt is either the fixed frame period or measured wall time
//
// # Example Usage
//
//	s := tickerx.NewScheduler(tickerx.WithLogger(logger))
//	loop := realtime.NewFrameLoop(s, realtime.Config{
//		FrameRate: 16667 * time.Microsecond, // 60 FPS
//		FixedStep: true,
//	}, logger)
//	loop.Start(ctx)
//	defer loop.Stop()
//
//	loop.Post(func(s *tickerx.Scheduler) {
//		s.Tween(0.5, setAlpha, nil, nil)
//	})
//
// # Headless Use
//
// Step runs exactly one frame on the caller's goroutine. Tests and offline
// simulations call it directly instead of starting the loop.
//
// # Frame Ordering
//
// Within one frame:
//  1. Posted functions run (a Submit here lands in the scheduler's next queue)
//  2. Scheduler.AdvanceFrame swaps queues and walks the slots
//  3. The frame counter increments
//
// Panics in posted functions are recovered and logged; later posts in the
// same frame still run.
package realtime
