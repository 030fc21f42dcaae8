package core

import "runtime"

// ExecConfig defines how batch numeric work is spread over goroutines.
type ExecConfig struct {
	Workers int
}

// ExecOption mutates an ExecConfig.
type ExecOption func(*ExecConfig)

// DefaultExecConfig returns a single-worker configuration.
func DefaultExecConfig() ExecConfig {
	return ExecConfig{
		Workers: 1,
	}
}

// WithWorkers sets the number of concurrent workers.
// Zero selects GOMAXPROCS; negative values are ignored.
func WithWorkers(workers int) ExecOption {
	return func(cfg *ExecConfig) {
		switch {
		case workers == 0:
			cfg.Workers = runtime.GOMAXPROCS(0)
		case workers > 0:
			cfg.Workers = workers
		}
	}
}

// ApplyExecOptions applies zero or more options to the default config.
func ApplyExecOptions(opts ...ExecOption) ExecConfig {
	cfg := DefaultExecConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
