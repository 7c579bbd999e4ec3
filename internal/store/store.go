// Package store records survey runs in a SQLite database.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection holding survey results.
type DB struct {
	conn *sqlx.DB
}

// Run is one simulated rule together with its summary statistics.
type Run struct {
	ID          string  `db:"id"`
	CreatedAt   string  `db:"created_at"`
	Rule        int     `db:"rule"`
	Cells       int     `db:"cells"`
	Steps       int     `db:"steps"`
	SeedMode    string  `db:"seed_mode"`
	Entropy     float64 `db:"entropy"`
	MeanDensity float64 `db:"mean_density"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		rule INTEGER NOT NULL,
		cells INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		seed_mode TEXT NOT NULL,
		entropy REAL NOT NULL,
		mean_density REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_entropy ON runs(entropy);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// InsertRun assigns the run an id and timestamp and stores it, returning the
// id.
func (db *DB) InsertRun(r Run) (string, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	_, err := db.conn.NamedExec(`
		INSERT INTO runs (id, created_at, rule, cells, steps, seed_mode, entropy, mean_density)
		VALUES (:id, :created_at, :rule, :cells, :steps, :seed_mode, :entropy, :mean_density)`, r)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return r.ID, nil
}

// TopByEntropy returns the most pattern-diverse runs recorded so far.
func (db *DB) TopByEntropy(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs, `
		SELECT id, created_at, rule, cells, steps, seed_mode, entropy, mean_density
		FROM runs ORDER BY entropy DESC, rule ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	return runs, nil
}
