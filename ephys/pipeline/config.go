package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-ephys/dsp/core"
	"github.com/cwbudde/algo-ephys/dsp/wavelet"
	"github.com/cwbudde/algo-ephys/ephys"
	"github.com/cwbudde/algo-ephys/ephys/dictionary"
	"github.com/cwbudde/algo-ephys/ephys/sparse"
	"github.com/cwbudde/algo-ephys/ephys/trace"
)

var (
	// ErrMissingPenalty is returned when the config sets no penalty.
	ErrMissingPenalty = errors.New("pipeline: penalty is required")
	// ErrInvalidConfig is returned for out-of-range settings.
	ErrInvalidConfig = errors.New("pipeline: invalid config")
)

// Config is the batch configuration, usually read from YAML.
type Config struct {
	Family     string       `yaml:"wavelet_family"`
	Resolution int          `yaml:"resolution"`
	Window     trace.Window `yaml:"window"`
	Penalty    *float64     `yaml:"penalty"`
	MeanLoss   bool         `yaml:"mean_loss"`
	Decimate   int          `yaml:"decimate"`
	GridStep   float64      `yaml:"grid_step"`
	MaxIter    int          `yaml:"max_iter"`
	Tolerance  float64      `yaml:"tolerance"`
	Workers    int          `yaml:"workers"`
	FailFast   bool         `yaml:"fail_fast"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes and validates YAML. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}

		return Config{}, ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, "config",
			"%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every setting. All failures are configuration errors.
func (c Config) Validate() error {
	const op = "config"

	invalid := func(format string, args ...any) error {
		return ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, op,
			"%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}

	if _, err := wavelet.Lookup(c.Family); err != nil {
		return ephys.Wrap(ephys.KindConfiguration, ephys.TraceID{}, op, err)
	}

	if c.Resolution < 2 || !core.IsPowerOfTwo(c.Resolution) {
		return ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, op,
			"%w: %d", dictionary.ErrUnsupportedResolution, c.Resolution)
	}

	if err := c.Window.Validate(); err != nil {
		return err
	}

	switch {
	case c.Penalty == nil:
		return ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, op, "%w", ErrMissingPenalty)
	case math.IsNaN(*c.Penalty) || math.IsInf(*c.Penalty, 0) || *c.Penalty < 0:
		return ephys.Errorf(ephys.KindConfiguration, ephys.TraceID{}, op,
			"%w: %g", sparse.ErrInvalidPenalty, *c.Penalty)
	case c.Decimate < 0:
		return invalid("decimate %d < 0", c.Decimate)
	case c.GridStep < 0 || math.IsNaN(c.GridStep) || math.IsInf(c.GridStep, 0):
		return invalid("grid_step %g", c.GridStep)
	case c.MaxIter < 0:
		return invalid("max_iter %d < 0", c.MaxIter)
	case c.Tolerance < 0 || math.IsNaN(c.Tolerance):
		return invalid("tolerance %g", c.Tolerance)
	case c.Workers < 0:
		return invalid("workers %d < 0", c.Workers)
	case c.GridStep > 0 && len(c.grid()) < 2:
		return invalid("grid_step %g leaves fewer than 2 grid points", c.GridStep)
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return c.Workers
}

// grid returns the common sample times inside the open window, or nil
// when no grid step is set. The times depend only on the config, so every
// trace of a batch shares one dictionary.
func (c Config) grid() []float64 {
	if !(c.GridStep > 0) {
		return nil
	}

	all := trace.Grid(c.Window.Min, c.Window.Max, c.GridStep)
	if len(all) > 0 && all[0] <= c.Window.Min {
		all = all[1:]
	}

	return all
}

func (c Config) fitOptions() []sparse.Option {
	opts := []sparse.Option{
		sparse.WithMaxIter(c.MaxIter),
		sparse.WithTolerance(c.Tolerance),
	}

	if c.MeanLoss {
		opts = append(opts, sparse.WithMeanLoss())
	}

	return opts
}
