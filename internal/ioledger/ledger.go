// Package ioledger keeps a local history of SHOGUN runs in a SQLite
// file. Each run is one row with its commands, parameters and outputs.
package ioledger

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnshogun/pkg/shogun"
	"github.com/gnames/gnsys"
	"github.com/google/uuid"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run describes one invocation of a profiling mode.
type Run struct {
	ID        string
	Mode      string
	Commands  []string
	Params    shogun.Params
	Query     string
	IndexName string
	Start     time.Time
	Duration  time.Duration
	Status    string
	Error     string
	Outputs   []string
}

// NewRun creates a run record with a fresh ID started now.
func NewRun(mode string) *Run {
	return &Run{
		ID:    uuid.NewString(),
		Mode:  mode,
		Start: time.Now(),
	}
}

// Finish sets duration and status of a run from its error.
func (r *Run) Finish(err error) {
	r.Duration = time.Since(r.Start)
	r.Status = StatusOK
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
	}
}

// Ledger is a SQLite-backed run history.
type Ledger struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	mode TEXT NOT NULL,
	commands TEXT NOT NULL,
	taxacut REAL NOT NULL,
	threads INTEGER NOT NULL,
	percent_id REAL NOT NULL,
	query TEXT NOT NULL,
	index_name TEXT NOT NULL,
	started_at INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	status TEXT NOT NULL,
	error TEXT NOT NULL,
	outputs TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`

// Open opens or creates a ledger at path.
func Open(path string) (*Ledger, error) {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return nil, LedgerError("open", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, LedgerError("open", path, err)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, LedgerError("initialize", path, err)
	}

	slog.Debug("Opened run ledger", "path", path)
	return &Ledger{db: db}, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record saves a run.
func (l *Ledger) Record(ctx context.Context, r *Run) error {
	enc := gnfmt.GNjson{}
	cmds, err := enc.Encode(r.Commands)
	if err != nil {
		return LedgerError("encode commands of", r.ID, err)
	}
	outs, err := enc.Encode(r.Outputs)
	if err != nil {
		return LedgerError("encode outputs of", r.ID, err)
	}

	_, err = l.db.ExecContext(ctx, `
	INSERT INTO runs (
		id, mode, commands, taxacut, threads, percent_id, query,
		index_name, started_at, duration_ms, status, error, outputs
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Mode, string(cmds),
		r.Params.TaxaCut, r.Params.Threads, r.Params.PercentID,
		r.Query, r.IndexName,
		r.Start.UnixMilli(), r.Duration.Milliseconds(),
		r.Status, r.Error, string(outs),
	)
	if err != nil {
		return LedgerError("record", r.ID, err)
	}
	return nil
}

// Recent returns up to n latest runs, newest first.
func (l *Ledger) Recent(ctx context.Context, n int) ([]Run, error) {
	rows, err := l.db.QueryContext(ctx, `
	SELECT
		id, mode, commands, taxacut, threads, percent_id, query,
		index_name, started_at, duration_ms, status, error, outputs
	FROM runs
	ORDER BY started_at DESC, rowid DESC
	LIMIT ?`, n)
	if err != nil {
		return nil, LedgerError("query", "runs", err)
	}
	defer rows.Close()

	enc := gnfmt.GNjson{}
	var res []Run
	for rows.Next() {
		var r Run
		var cmds, outs string
		var start, dur int64
		err = rows.Scan(
			&r.ID, &r.Mode, &cmds,
			&r.Params.TaxaCut, &r.Params.Threads, &r.Params.PercentID,
			&r.Query, &r.IndexName,
			&start, &dur,
			&r.Status, &r.Error, &outs,
		)
		if err != nil {
			return nil, LedgerError("read", "runs", err)
		}
		if err = enc.Decode([]byte(cmds), &r.Commands); err != nil {
			return nil, LedgerError("decode commands of", r.ID, err)
		}
		if err = enc.Decode([]byte(outs), &r.Outputs); err != nil {
			return nil, LedgerError("decode outputs of", r.ID, err)
		}
		r.Start = time.UnixMilli(start)
		r.Duration = time.Duration(dur) * time.Millisecond
		res = append(res, r)
	}
	if err = rows.Err(); err != nil {
		return nil, LedgerError("read", "runs", err)
	}
	return res, nil
}
