package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-ephys/dsp/wavelet"
)

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List wavelet families and their filter lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Family\tTaps\n")

			for _, name := range wavelet.Families() {
				w, err := wavelet.Lookup(name)
				if err != nil {
					return err
				}

				fmt.Fprintf(tw, "%s\t%d\n", w.Name(), w.Len())
			}

			return tw.Flush()
		},
	}
}
