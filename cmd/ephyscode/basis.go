package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-ephys/dsp/core"
	"github.com/cwbudde/algo-ephys/ephys/dictionary"
)

func newBasisCmd() *cobra.Command {
	var (
		family     string
		resolution int
		minTime    float64
		maxTime    float64
		points     int
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "basis",
		Short: "Build a dictionary on evenly spaced times and print its layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if points < 2 {
				return errors.New("--points must be at least 2")
			}

			times := make([]float64, points)
			step := (maxTime - minTime) / float64(points-1)

			for i := range times {
				times[i] = minTime + float64(i)*step
			}

			d, err := dictionary.Build(times, family, resolution, core.WithWorkers(workers))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows, cols := d.Dims()
			fmt.Fprintf(out, "family=%s resolution=%d rows=%d cols=%d\n", d.Family(), d.Resolution(), rows, cols)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Band\tLevel\tOffset\tLen\n")
			fmt.Fprintf(tw, "----\t-----\t------\t---\n")

			for _, s := range d.Scales() {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", s.Kind, s.Level, s.Offset, s.Len)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&family, "family", "db3", "wavelet family")
	cmd.Flags().IntVar(&resolution, "resolution", 64, "transform length (power of two)")
	cmd.Flags().Float64Var(&minTime, "min", 0, "first query time")
	cmd.Flags().Float64Var(&maxTime, "max", 1, "last query time")
	cmd.Flags().IntVar(&points, "points", 100, "number of query times")
	cmd.Flags().IntVar(&workers, "workers", 1, "column build workers (0 = GOMAXPROCS)")

	return cmd
}
