package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/comalice/tickerx"
	"github.com/comalice/tickerx/easing"
)

type simOptions struct {
	Frames    int
	DT        float32
	Duration  float32
	Count     int
	Ease      string
	Script    string
	StopAt    int
	MoveToEnd bool
	Capacity  int
}

type simResult struct {
	Stats     tickerx.Stats `yaml:"stats"`
	Started   int           `yaml:"started"`
	Updates   int           `yaml:"updates"`
	Completed int           `yaml:"completed"`
	Pending   int           `yaml:"pending"`
}

func newSimulateCmd() *cobra.Command {
	opts := simOptions{
		Frames:   120,
		DT:       1.0 / 60,
		Duration: 1,
		Count:    10,
		StopAt:   -1,
	}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run tracked tweens headless and print scheduler stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Capacity = cfg.Scheduler.Capacity
			res, err := simulate(opts, logger)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts, res)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Frames, "frames", opts.Frames, "Number of frames to run")
	f.Float32Var(&opts.DT, "dt", opts.DT, "Seconds per frame")
	f.Float32Var(&opts.Duration, "duration", opts.Duration, "Duration of the longest tween in seconds")
	f.IntVar(&opts.Count, "count", opts.Count, "Number of tweens, staggered evenly up to --duration")
	f.StringVar(&opts.Ease, "ease", "", "Named easing curve (see 'tickerx easings')")
	f.StringVar(&opts.Script, "script", "", "JavaScript easing expression over t, from, to, d")
	f.IntVar(&opts.StopAt, "stop-at", opts.StopAt, "Frame at which to stop the whole group (-1 to disable)")
	f.BoolVar(&opts.MoveToEnd, "move-to-end", false, "Group stop jumps tweens to their end value")
	return cmd
}

func resolveEasing(name, script string) (easing.Func, error) {
	if script != "" {
		if name != "" {
			return nil, fmt.Errorf("--ease and --script are mutually exclusive")
		}
		return easing.Compile(script)
	}
	return easing.ByName(name)
}

func simulate(opts simOptions, logger *slog.Logger) (simResult, error) {
	if opts.Frames < 0 || opts.Count < 0 {
		return simResult{}, fmt.Errorf("frames and count must not be negative")
	}
	ease, err := resolveEasing(opts.Ease, opts.Script)
	if err != nil {
		return simResult{}, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := tickerx.NewScheduler(tickerx.WithLogger(logger), tickerx.WithCapacity(opts.Capacity))
	tr := tickerx.NewTracker(s, "simulate")

	var res simResult
	for i := 0; i < opts.Count; i++ {
		d := opts.Duration * float32(i+1) / float32(opts.Count)
		tr.TweenEase(d, ease,
			func(float32) { res.Updates++ },
			func() { res.Completed++ },
			func() { res.Started++ },
		)
	}

	for frame := 1; frame <= opts.Frames; frame++ {
		if frame == opts.StopAt {
			pending := tr.Pending()
			for i := 0; i < pending; i++ {
				tr.RequestStop(opts.MoveToEnd)
			}
			logger.Info("group stop requested", "frame", frame, "pending", pending, "move_to_end", opts.MoveToEnd)
		}
		s.AdvanceFrame(opts.DT)
	}

	res.Stats = s.Stats()
	res.Pending = tr.Pending()
	return res, nil
}

func writeResult(w io.Writer, opts simOptions, res simResult) error {
	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	simulated := float64(opts.Frames) * float64(opts.DT)
	_, err = fmt.Fprintf(w, "# %s frames (%ss simulated), %s updates, %d/%d tweens completed\n",
		humanize.Comma(int64(res.Stats.Frame)),
		humanize.FtoaWithDigits(simulated, 3),
		humanize.Comma(int64(res.Updates)),
		res.Completed, opts.Count,
	)
	return err
}
