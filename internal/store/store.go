// Package store exports coding results to an SQLite database.
//
// Tables:
//
//	traces          one row per fitted trace with metadata and fit summary
//	coefficients    non-zero coefficients (trace, column, value)
//	reconstructions standardized samples and fitted values per trace
//	matrix_columns  dictionary column of each assembled matrix column
//	failures        traces that could not be coded
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/cwbudde/algo-ephys/ephys"
	"github.com/cwbudde/algo-ephys/ephys/pipeline"
)

const schema = `
CREATE TABLE IF NOT EXISTS traces (
	file       TEXT NOT NULL,
	channel    TEXT NOT NULL,
	genotype   TEXT NOT NULL DEFAULT '',
	source     TEXT NOT NULL DEFAULT '',
	target     TEXT NOT NULL DEFAULT '',
	family     TEXT NOT NULL,
	resolution INTEGER NOT NULL,
	samples    INTEGER NOT NULL,
	nonzero    INTEGER NOT NULL,
	iterations INTEGER NOT NULL,
	converged  INTEGER NOT NULL,
	PRIMARY KEY (file, channel)
);

CREATE TABLE IF NOT EXISTS coefficients (
	file    TEXT NOT NULL,
	channel TEXT NOT NULL,
	col     INTEGER NOT NULL,
	value   REAL NOT NULL,
	PRIMARY KEY (file, channel, col),
	FOREIGN KEY (file, channel) REFERENCES traces (file, channel) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS reconstructions (
	file    TEXT NOT NULL,
	channel TEXT NOT NULL,
	idx     INTEGER NOT NULL,
	time    REAL NOT NULL,
	value   REAL NOT NULL,
	fitted  REAL NOT NULL,
	PRIMARY KEY (file, channel, idx),
	FOREIGN KEY (file, channel) REFERENCES traces (file, channel) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS matrix_columns (
	position          INTEGER PRIMARY KEY,
	dictionary_column INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS failures (
	file    TEXT NOT NULL,
	channel TEXT NOT NULL,
	kind    TEXT NOT NULL,
	message TEXT NOT NULL,
	PRIMARY KEY (file, channel)
);
`

// ErrNilReport is returned by SaveReport for a nil report.
var ErrNilReport = errors.New("store: nil report")

type config struct {
	busyTimeout int
	mkdirAll    bool
	logger      *slog.Logger
}

// Option customises Open.
type Option func(*config)

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds. Default: 10000.
func WithBusyTimeout(ms int) Option { return func(c *config) { c.busyTimeout = ms } }

// WithMkdirAll creates the parent directory of the database file.
func WithMkdirAll() Option { return func(c *config) { c.mkdirAll = true } }

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option { return func(c *config) { c.logger = l } }

// Store writes reports to one SQLite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the database at path, applies pragmas and the
// schema. Use ":memory:" for a private in-memory database.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := config{busyTimeout: 10_000}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	if cfg.mkdirAll && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	if path == ":memory:" {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout),
		"PRAGMA synchronous = NORMAL",
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}

	return &Store{db: db, logger: cfg.logger}, nil
}

// DB exposes the underlying handle for queries.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// SaveReport writes a report in one transaction, replacing rows of the
// same traces and the previous matrix layout.
func (s *Store) SaveReport(ctx context.Context, r *pipeline.Report) (err error) {
	if r == nil {
		return ErrNilReport
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, f := range r.Fits {
		if err = saveFit(ctx, tx, f); err != nil {
			return err
		}
	}

	for _, f := range r.Failures {
		if err = clearTrace(ctx, tx, f.ID); err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx,
			`INSERT INTO failures (file, channel, kind, message) VALUES (?, ?, ?, ?)`,
			f.ID.File, f.ID.Channel, ephys.KindOf(f.Err).String(), f.Err.Error()); err != nil {
			return fmt.Errorf("store: failure %s: %w", f.ID, err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM matrix_columns`); err != nil {
		return fmt.Errorf("store: clear matrix columns: %w", err)
	}

	if r.Matrix != nil {
		for k, col := range r.Matrix.Columns {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO matrix_columns (position, dictionary_column) VALUES (?, ?)`, k, col); err != nil {
				return fmt.Errorf("store: matrix column %d: %w", k, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}

	s.logger.Info("report saved",
		slog.Int("fits", len(r.Fits)),
		slog.Int("failures", len(r.Failures)))

	return nil
}

// clearTrace removes earlier results of id. Child rows are deleted
// explicitly since foreign_keys is a per-connection pragma.
func clearTrace(ctx context.Context, tx *sql.Tx, id ephys.TraceID) error {
	for _, table := range []string{"coefficients", "reconstructions", "traces", "failures"} {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM "+table+" WHERE file = ? AND channel = ?", id.File, id.Channel); err != nil {
			return fmt.Errorf("store: clear %s %s: %w", table, id, err)
		}
	}

	return nil
}

func saveFit(ctx context.Context, tx *sql.Tx, f pipeline.Fit) error {
	var nonzero int

	for _, b := range f.Coefficients {
		if b != 0 {
			nonzero++
		}
	}

	if err := clearTrace(ctx, tx, f.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO traces (file, channel, genotype, source, target, family, resolution,
			samples, nonzero, iterations, converged)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID.File, f.ID.Channel, f.Meta.Genotype, f.Meta.Source, f.Meta.Target,
		f.Dictionary.Family, f.Dictionary.Resolution,
		len(f.Times), nonzero, f.Iterations, f.Converged); err != nil {
		return fmt.Errorf("store: trace %s: %w", f.ID, err)
	}

	coef, err := tx.PrepareContext(ctx,
		`INSERT INTO coefficients (file, channel, col, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare coefficients: %w", err)
	}
	defer coef.Close()

	for j, b := range f.Coefficients {
		if b == 0 {
			continue
		}

		if _, err := coef.ExecContext(ctx, f.ID.File, f.ID.Channel, j, b); err != nil {
			return fmt.Errorf("store: coefficient %s[%d]: %w", f.ID, j, err)
		}
	}

	rec, err := tx.PrepareContext(ctx,
		`INSERT INTO reconstructions (file, channel, idx, time, value, fitted) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare reconstructions: %w", err)
	}
	defer rec.Close()

	for i := range f.Times {
		if _, err := rec.ExecContext(ctx, f.ID.File, f.ID.Channel, i,
			f.Times[i], f.Values[i], f.Reconstruction[i]); err != nil {
			return fmt.Errorf("store: reconstruction %s[%d]: %w", f.ID, i, err)
		}
	}

	return nil
}
