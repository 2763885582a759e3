package main

import (
	"fmt"
	"io"

	"github.com/matt-g-everett/tweentx/transition"
	"github.com/spf13/cobra"
)

func curveCmd() *cobra.Command {
	var kind, easing string
	var steps int
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the normalised easing curve of an animation kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurve(cmd.OutOrStdout(), kind, easing, steps)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "linear", "Animation kind (linear|cubic|sine)")
	cmd.Flags().StringVar(&easing, "easing", "ease-in-out", "Easing (ease-in|ease-out|ease-in-out)")
	cmd.Flags().IntVar(&steps, "steps", 10, "Number of intervals to sample")
	return cmd
}

func runCurve(out io.Writer, kind, easing string, steps int) error {
	k, err := transition.ParseKind(kind)
	if err != nil {
		return err
	}
	e, err := transition.ParseEasing(easing)
	if err != nil {
		return err
	}
	curve, ok := transition.CurveFor(k, e)
	if !ok {
		return fmt.Errorf("%s has no fixed easing curve", k)
	}
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	for i := 0; i <= steps; i++ {
		v := transition.Tween(curve, float64(i), 0, 1, float64(steps))
		fmt.Fprintf(out, "%.3f  %.6f\n", float64(i)/float64(steps), v)
	}
	return nil
}
