package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/stream"
	"github.com/matt-g-everett/tweentx/transition"
	"github.com/spf13/cobra"
)

const barWidth = 40

type playOptions struct {
	from, to      float64
	kind, easing  string
	duration      time.Duration
	backwardAfter time.Duration
	sample        time.Duration
	tick          time.Duration
}

func playCmd() *cobra.Command {
	var o playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a transition locally and print its value over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runPlay(ctx, cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().Float64Var(&o.from, "from", 0, "Start value")
	cmd.Flags().Float64Var(&o.to, "to", 100, "End value")
	cmd.Flags().StringVar(&o.kind, "kind", "linear", "Animation kind (linear|cubic|sine|spring|bounce)")
	cmd.Flags().StringVar(&o.easing, "easing", "ease-in-out", "Easing (ease-in|ease-out|ease-in-out)")
	cmd.Flags().DurationVar(&o.duration, "duration", 400*time.Millisecond, "Animation duration")
	cmd.Flags().DurationVar(&o.backwardAfter, "backward-after", 0, "Play backward this long after starting (0 disables)")
	cmd.Flags().DurationVar(&o.sample, "sample", 20*time.Millisecond, "Interval between printed samples")
	cmd.Flags().DurationVar(&o.tick, "tick", transition.DefaultTick, "Scheduler tick interval")
	return cmd
}

func runPlay(ctx context.Context, out io.Writer, o playOptions) error {
	a, err := transition.ParseAnimation(o.kind, o.easing, o.duration)
	if err != nil {
		return err
	}
	if o.sample <= 0 {
		return fmt.Errorf("sample interval must be positive, got %s", o.sample)
	}

	logger := newLogger("warn", "text")
	var frames atomic.Int64
	tr := transition.New(ctx, []transition.Phase{transition.From(o.from), transition.To(o.to)},
		transition.WithRedraw(func() { frames.Add(1) }),
		transition.WithLogger(logger),
		transition.WithTickInterval(o.tick),
	)
	defer tr.Close()
	bar := stream.NewBar(barWidth, o.from, o.to, nil, colorful.Color{})

	start := time.Now()
	if a.Kind == transition.KindBounce {
		// Bounce is not implemented; play it anyway so its timing can be seen.
		tr.Forward(a)
	} else if err := tr.TryForward(a); err != nil {
		return err
	}

	sampler := time.NewTicker(o.sample)
	defer sampler.Stop()
	reversed := o.backwardAfter <= 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sampler.C:
		}

		elapsed := time.Since(start)
		if !reversed && elapsed >= o.backwardAfter {
			tr.Backward(a)
			reversed = true
			fmt.Fprintf(out, "%8s  backward\n", elapsed.Round(time.Millisecond))
		}

		v := tr.Read()
		lit := int(bar.Fraction(v)*barWidth + 0.5)
		fmt.Fprintf(out, "%8s  %10.4f  |%s%s|\n", elapsed.Round(time.Millisecond), v,
			strings.Repeat("#", lit), strings.Repeat(" ", barWidth-lit))

		if reversed && tr.Idle() {
			break
		}
	}

	fmt.Fprintf(out, "final %.4f after %d frames\n", tr.Read(), frames.Load())
	return nil
}
