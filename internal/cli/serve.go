package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/comalice/tickerx"
	"github.com/comalice/tickerx/easing"
	"github.com/comalice/tickerx/internal/config"
	"github.com/comalice/tickerx/internal/inspect"
	"github.com/comalice/tickerx/realtime"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a realtime frame loop with the HTTP inspector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg
			if cmd.Flags().Changed("addr") {
				c.Inspect.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, c, logger, nil)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.Default().Inspect.Addr, "Inspector listen address")
	return cmd
}

// serve runs until ctx is done. ready, when non-nil, receives the bound
// listener address once the inspector is accepting connections.
func serve(ctx context.Context, c config.Config, logger *slog.Logger, ready chan<- string) error {
	s := tickerx.NewScheduler(
		tickerx.WithLogger(logger),
		tickerx.WithCapacity(c.Scheduler.Capacity),
		tickerx.WithPaused(c.Scheduler.StartPaused),
	)
	loop := realtime.NewFrameLoop(s, realtime.Config{
		FrameRate:        c.Loop.FrameRate,
		FixedStep:        c.Loop.FixedStep,
		MaxPostsPerFrame: c.Loop.MaxPostsPerFrame,
	}, logger)

	ln, err := net.Listen("tcp", c.Inspect.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", c.Inspect.Addr, err)
	}
	httpServer := &http.Server{
		Handler:           inspect.New(loop, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := loop.Start(ctx); err != nil {
		ln.Close()
		return err
	}
	if err := loop.Post(pulse(logger, nil)); err != nil {
		loop.Stop()
		ln.Close()
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("inspector listening", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	if ready != nil {
		ready <- ln.Addr().String()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case runErr = <-serveErr:
		logger.Error("inspector failed", "error", runErr)
	}

	// Stop the frame loop before the HTTP server.
	if err := loop.Stop(); err != nil && !errors.Is(err, realtime.ErrNotRunning) {
		logger.Error("frame loop stop error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("stopped", "frames", loop.FrameNumber())
	return runErr
}

// pulse returns a post that keeps one sine-eased tween alive, rechaining
// itself from onDone so the inspector always has something to report.
// observe, when non-nil, sees every value.
func pulse(logger *slog.Logger, observe func(float32)) func(*tickerx.Scheduler) {
	curve := easing.FromTween(ease.InOutSine)
	var cycle uint64

	var start func(s *tickerx.Scheduler)
	start = func(s *tickerx.Scheduler) {
		peak := float32(0)
		s.Build(1).
			Ease(curve).
			OnUpdate(func(v float32) {
				peak = max(peak, v)
				if observe != nil {
					observe(v)
				}
			}).
			OnDone(func() {
				cycle++
				logger.Debug("pulse", "cycle", cycle, "peak", peak, "frame", s.FrameNumber())
				start(s)
			}).
			Submit()
	}
	return start
}
