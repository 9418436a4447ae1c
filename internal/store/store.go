// Package store records benchmark runs in a SQLite database, so results can
// be compared across builds.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/achille-roussel/intersperse-go/internal/bench"
)

var (
	// ErrClosed is returned by Store methods when the store has been closed.
	ErrClosed = errors.New("store is closed")
)

const (
	memory = ":memory:"
)

// Store is a history of benchmark runs backed by SQLite.
type Store struct {
	cfg *Config
	db  *sql.DB
}

// Run is one invocation of the benchmark harness.
type Run struct {
	ID        RunID
	StartedAt time.Time
	Elements  int
	Trials    int
	Results   []bench.Result
}

type RunID = string

// New opens the store. Without options the store lives in memory.
func New(options ...Option) (*Store, error) {
	cfg := &Config{file: memory}
	for _, opt := range options {
		opt(cfg)
	}

	db, err := open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if err := setup(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setup: %w", err)
	}

	return &Store{cfg: cfg, db: db}, nil
}

// SaveRun records a run and the timings of all its trials in a single
// transaction, returning the identifier assigned to the run.
//
// Returns [ErrClosed] if the store has been closed.
func (s *Store) SaveRun(run Run) (RunID, error) {
	id := generateID()

	tx, err := s.db.Begin()
	if err != nil {
		return "", wrapClosed(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`
		insert into run (
			id,
			started_at,
			elements,
			trials
		) values (
			:id,
			:started_at,
			:elements,
			:trials
		)
		`,
		sql.Named("id", id),
		sql.Named("started_at", run.StartedAt.UnixNano()),
		sql.Named("elements", run.Elements),
		sql.Named("trials", run.Trials),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`
		insert into trial (
			run_id,
			workload,
			mode,
			seq,
			elapsed
		) values (
			:run_id,
			:workload,
			:mode,
			:seq,
			:elapsed
		)
		`,
	)
	if err != nil {
		return "", fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, res := range run.Results {
		for i, elapsed := range res.Trials {
			if _, err := stmt.Exec(
				sql.Named("run_id", id),
				sql.Named("workload", res.Workload),
				sql.Named("mode", string(res.Mode)),
				sql.Named("seq", i),
				sql.Named("elapsed", int64(elapsed)),
			); err != nil {
				return "", fmt.Errorf("insert trial: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Runs returns up to limit runs, most recent first, with their results.
//
// Returns [ErrClosed] if the store has been closed.
func (s *Store) Runs(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`
		select id, started_at, elements, trials
		from run
		order by started_at desc
		limit :limit
		`,
		sql.Named("limit", limit),
	)
	if err != nil {
		return nil, wrapClosed(err)
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		var (
			r         Run
			startedAt int64
		)
		if err := rows.Scan(&r.ID, &startedAt, &r.Elements, &r.Trials); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.StartedAt = time.Unix(0, startedAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	for i := range runs {
		if runs[i].Results, err = s.results(runs[i]); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Store) results(run Run) ([]bench.Result, error) {
	rows, err := s.db.Query(
		`
		select workload, mode, elapsed
		from trial
		where run_id = :run_id
		order by rowid asc
		`,
		sql.Named("run_id", run.ID),
	)
	if err != nil {
		return nil, wrapClosed(err)
	}
	defer rows.Close()

	var results []bench.Result
	for rows.Next() {
		var (
			workload string
			mode     string
			elapsed  int64
		)
		if err := rows.Scan(&workload, &mode, &elapsed); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		n := len(results)
		if n == 0 || results[n-1].Workload != workload || results[n-1].Mode != bench.Mode(mode) {
			results = append(results, bench.Result{
				Workload: workload,
				Mode:     bench.Mode(mode),
				Elements: run.Elements,
			})
			n++
		}
		results[n-1].Trials = append(results[n-1].Trials, time.Duration(elapsed))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return results, nil
}

// Close closes the underlying SQLite database.
//
// After closing, all methods on Store will return [ErrClosed].
func (s *Store) Close() error {
	return s.db.Close()
}

func wrapClosed(err error) error {
	if err != nil && err.Error() == "sql: database is closed" {
		return ErrClosed
	}
	return err
}

func generateID() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const n = 10
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}

func open(cfg *Config) (*sql.DB, error) {
	params := url.Values{}
	params.Add("_txlock", "immediate")
	params.Add("_timeout", "5000") // 5s
	params.Add("_foreign_keys", "on")

	file := cfg.file
	if file == memory {
		file = generateID()
		params.Add("mode", "memory")
		params.Add("cache", "shared")
	} else {
		params.Add("_journal", "wal")
		params.Add("_sync", "normal")
	}

	db, err := sql.Open("sqlite3", "file:"+file+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

func setup(db *sql.DB) error {
	if _, err := db.Exec(
		`
		create table if not exists run (
			id         text primary key,
			started_at int not null,
			elements   int not null,
			trials     int not null
		) strict
		`,
	); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(
		`
		create table if not exists trial (
			run_id   text not null references run (id) on delete cascade,
			workload text not null,
			mode     text not null,
			seq      int not null,
			elapsed  int not null
		) strict
		`,
	); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(
		`
		create index if not exists idx_trial_run
		on trial (run_id)
		`,
	); err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	return nil
}
