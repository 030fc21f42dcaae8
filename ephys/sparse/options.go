package sparse

const (
	defaultMaxIter   = 1000
	defaultTolerance = 1e-4
)

type config struct {
	maxIter   int
	tolerance float64
	meanLoss  bool
	warm      []float64
}

func defaultConfig() config {
	return config{
		maxIter:   defaultMaxIter,
		tolerance: defaultTolerance,
	}
}

// Option configures a Fit call.
type Option func(*config)

// WithMaxIter bounds the number of full coordinate sweeps.
// Non-positive values are ignored.
func WithMaxIter(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIter = n
		}
	}
}

// WithTolerance sets the stopping threshold on the largest coefficient
// change of a sweep, relative to the largest coefficient.
// Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(cfg *config) {
		if tol > 0 {
			cfg.tolerance = tol
		}
	}
}

// WithMeanLoss scales the squared error by 1/(2n).
func WithMeanLoss() Option {
	return func(cfg *config) {
		cfg.meanLoss = true
	}
}

// WithWarmStart starts the descent from beta instead of zero. beta is
// copied.
func WithWarmStart(beta []float64) Option {
	return func(cfg *config) {
		cfg.warm = append([]float64(nil), beta...)
	}
}
