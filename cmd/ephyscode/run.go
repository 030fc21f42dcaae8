package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-ephys/ephys/pipeline"
	"github.com/cwbudde/algo-ephys/ephys/trace"
	"github.com/cwbudde/algo-ephys/internal/store"
	"github.com/cwbudde/algo-ephys/internal/tracefile"
)

var errNothingFitted = errors.New("no trace could be fitted")

func newRunCmd(newLogger func(io.Writer) (*slog.Logger, error)) *cobra.Command {
	var (
		configPath string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "run <trace-dir | file...>",
		Short: "Code recordings and export the results to SQLite",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cfg, err := pipeline.LoadConfig(configPath)
			if err != nil {
				return err
			}

			traces, err := readInputs(args)
			if err != nil {
				return err
			}

			logger.Info("traces loaded", slog.Int("count", len(traces)))

			p, err := pipeline.New(cfg, pipeline.WithLogger(logger))
			if err != nil {
				return err
			}

			report, err := p.Run(cmd.Context(), traces)
			if err != nil {
				return err
			}

			st, err := store.Open(outPath, store.WithMkdirAll(), store.WithLogger(logger))
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SaveReport(cmd.Context(), report); err != nil {
				return err
			}

			rows, cols := report.Matrix.Dims()
			fmt.Fprintf(cmd.OutOrStdout(), "fitted %d of %d traces, matrix %dx%d, written to %s\n",
				len(report.Fits), len(traces), rows, cols, outPath)

			if len(report.Fits) == 0 {
				return errNothingFitted
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&outPath, "out", "results.db", "SQLite output database")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// readInputs loads every recording named by args; directories contribute
// all their .txt files.
func readInputs(args []string) ([]trace.Trace, error) {
	var out []trace.Trace

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		var traces []trace.Trace
		if info.IsDir() {
			traces, err = tracefile.ReadDir(arg)
		} else {
			traces, err = tracefile.ReadFile(arg)
		}

		if err != nil {
			return nil, err
		}

		out = append(out, traces...)
	}

	return out, nil
}
