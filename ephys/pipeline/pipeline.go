package pipeline

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-ephys/ephys"
	"github.com/cwbudde/algo-ephys/ephys/assemble"
	"github.com/cwbudde/algo-ephys/ephys/dictionary"
	"github.com/cwbudde/algo-ephys/ephys/sparse"
	"github.com/cwbudde/algo-ephys/ephys/trace"
)

// Fit is the outcome for one successfully coded trace.
type Fit struct {
	ID             ephys.TraceID
	Meta           trace.Metadata
	Dictionary     dictionary.Key
	Times          []float64 // standardized sample times
	Values         []float64 // standardized sample values
	Coefficients   []float64
	Reconstruction []float64
	Iterations     int
	Converged      bool
}

// Failure records a trace that could not be coded.
type Failure struct {
	ID  ephys.TraceID
	Err error
}

// Report summarizes a batch. Fits and Failures are ordered by trace ID.
type Report struct {
	Dictionaries int
	Fits         []Fit
	Failures     []Failure
	Matrix       *assemble.Matrix
	Elapsed      time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithCache shares a dictionary cache between pipelines.
func WithCache(c *dictionary.Cache) Option {
	return func(p *Pipeline) {
		if c != nil {
			p.cache = c
		}
	}
}

// Pipeline codes batches of traces with one configuration.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
	cache  *dictionary.Cache

	grid []float64 // common sample times, nil without grid_step

	mu     sync.Mutex
	coders map[*dictionary.Dictionary]*sparse.Coder
}

// New validates cfg and returns a ready pipeline.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:    cfg,
		logger: slog.Default(),
		grid:   cfg.grid(),
		coders: make(map[*dictionary.Dictionary]*sparse.Coder),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.cache == nil {
		p.cache = dictionary.NewCache()
	}

	return p, nil
}

// Run codes every trace and assembles the coefficient matrix. Per-trace
// failures are collected in the report. With FailFast the first failure
// cancels the batch and is returned together with the partial report.
// Cancellation of ctx is observed between traces.
func (p *Pipeline) Run(ctx context.Context, traces []trace.Trace) (*Report, error) {
	start := time.Now()

	fits := make([]*Fit, len(traces))
	failures := make([]error, len(traces))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.workers())

	for i := range traces {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fit, err := p.code(traces[i])
			if err != nil {
				failures[i] = ephys.Wrap(ephys.KindStandardization, traces[i].ID, "code", err)
				p.logger.Warn("trace failed",
					slog.String("trace", traces[i].ID.String()),
					slog.String("kind", ephys.KindOf(failures[i]).String()),
					slog.Any("error", err))

				if p.cfg.FailFast {
					return failures[i]
				}

				return nil
			}

			fits[i] = fit

			return nil
		})
	}

	runErr := g.Wait()

	report := p.collect(traces, fits, failures)
	report.Elapsed = time.Since(start)

	if runErr != nil {
		p.logger.Error("batch aborted", slog.Any("error", runErr))
		return report, runErr
	}

	rows := make([]assemble.Row, len(report.Fits))
	for i, f := range report.Fits {
		rows[i] = assemble.Row{ID: f.ID, Coefficients: f.Coefficients}
	}

	m, err := assemble.Assemble(rows)
	if err != nil {
		return report, err
	}

	report.Matrix = m

	r, c := m.Dims()
	p.logger.Info("batch done",
		slog.Int("traces", len(traces)),
		slog.Int("fitted", len(report.Fits)),
		slog.Int("failed", len(report.Failures)),
		slog.Int("dictionaries", report.Dictionaries),
		slog.Int("rows", r),
		slog.Int("columns", c),
		slog.Duration("elapsed", report.Elapsed))

	return report, nil
}

func (p *Pipeline) collect(traces []trace.Trace, fits []*Fit, failures []error) *Report {
	report := &Report{Dictionaries: p.cache.Len()}

	for i := range traces {
		switch {
		case fits[i] != nil:
			report.Fits = append(report.Fits, *fits[i])
		case failures[i] != nil:
			report.Failures = append(report.Failures, Failure{ID: traces[i].ID, Err: failures[i]})
		}
	}

	slices.SortStableFunc(report.Fits, func(a, b Fit) int { return a.ID.Compare(b.ID) })
	slices.SortStableFunc(report.Failures, func(a, b Failure) int { return a.ID.Compare(b.ID) })

	return report
}

// code runs all per-trace stages.
func (p *Pipeline) code(tr trace.Trace) (*Fit, error) {
	log := p.logger.With(slog.String("trace", tr.ID.String()))

	if err := trace.Validate(tr); err != nil {
		return nil, err
	}

	tr, err := trace.Align(tr)
	if err != nil {
		return nil, err
	}

	log.Debug("aligned", slog.Int("samples", tr.Len()))

	if p.cfg.Decimate > 1 {
		if tr, err = trace.Decimate(tr, p.cfg.Decimate); err != nil {
			return nil, err
		}

		log.Debug("decimated", slog.Int("samples", tr.Len()))
	}

	tr, err = trace.Standardize(tr, p.cfg.Window)
	if err != nil {
		return nil, err
	}

	log.Debug("standardized", slog.Int("samples", tr.Len()))

	if p.grid != nil {
		if tr, err = trace.ResampleHold(tr, p.grid); err != nil {
			return nil, err
		}

		log.Debug("resampled", slog.Int("samples", tr.Len()))
	}

	times := tr.Times()

	d, err := p.cache.Get(times, p.cfg.Family, p.cfg.Resolution)
	if err != nil {
		return nil, err
	}

	coder, err := p.coder(d)
	if err != nil {
		return nil, err
	}

	res, err := coder.Fit(tr.Values(), *p.cfg.Penalty, p.cfg.fitOptions()...)
	if err != nil {
		return nil, err
	}

	if !res.Converged {
		log.Warn("fit did not converge", slog.Int("iterations", res.Iterations))
	}

	log.Debug("fitted",
		slog.Int("columns", d.Cols()),
		slog.Int("nonzero", res.NonZero()),
		slog.Int("iterations", res.Iterations))

	return &Fit{
		ID:             tr.ID,
		Meta:           tr.Meta,
		Dictionary:     d.Key(),
		Times:          times,
		Values:         tr.Values(),
		Coefficients:   res.Coefficients,
		Reconstruction: res.Reconstruction,
		Iterations:     res.Iterations,
		Converged:      res.Converged,
	}, nil
}

// coder returns the shared Coder for d.
func (p *Pipeline) coder(d *dictionary.Dictionary) (*sparse.Coder, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.coders[d]; ok {
		return c, nil
	}

	c, err := sparse.NewCoder(d)
	if err != nil {
		return nil, err
	}

	p.coders[d] = c

	return c, nil
}
