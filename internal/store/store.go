// Package store provides SQLite-backed persistence for the scan log.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sweeney/ghost-detector/internal/logic"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	scanned_at INTEGER NOT NULL,
	emf INTEGER NOT NULL,
	temperature_c REAL NOT NULL,
	motion INTEGER NOT NULL,
	ghost INTEGER NOT NULL,
	probability REAL NOT NULL,
	ghost_type TEXT NOT NULL DEFAULT '',
	activity_level TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at);
`

// dsnFor builds the driver DSN for a database path. File-backed stores get
// WAL and a busy timeout via modernc's _pragma form; the mattn-style
// _journal_mode=... parameters are silently ignored by this driver.
func dsnFor(path string) string {
	if path == ":memory:" {
		return path
	}
	return filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// Scan is one persisted scan row.
type Scan struct {
	ID            int64
	Timestamp     time.Time
	EMF           int
	Temperature   float64
	Motion        bool
	Ghost         bool
	Probability   float64
	GhostType     string
	ActivityLevel string
}

// Store provides SQLite-backed persistence for scan history.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a scan log SQLite store.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	sqlDB, err := sql.Open("sqlite", dsnFor(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise see its own empty database.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate scan log: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LogScan appends one scan result to the log.
func (s *Store) LogScan(ctx context.Context, result logic.ScanResult) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO scans (scanned_at, emf, temperature_c, motion, ghost, probability, ghost_type, activity_level)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Timestamp.Unix(),
		result.Reading.EMF,
		result.Reading.Temperature,
		boolToInt(result.Reading.Motion),
		boolToInt(result.Analysis.Ghost),
		result.Analysis.Probability,
		result.Analysis.GhostType,
		string(result.Analysis.ActivityLevel),
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// Recent returns up to n scans, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Scan, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, scanned_at, emf, temperature_c, motion, ghost, probability, ghost_type, activity_level
		 FROM scans
		 ORDER BY scanned_at DESC, id DESC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		scan, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scans: %w", err)
	}
	return scans, nil
}

func scanRow(rows *sql.Rows) (Scan, error) {
	var sc Scan
	var scannedAt int64
	var motion, ghost int64
	if err := rows.Scan(
		&sc.ID,
		&scannedAt,
		&sc.EMF,
		&sc.Temperature,
		&motion,
		&ghost,
		&sc.Probability,
		&sc.GhostType,
		&sc.ActivityLevel,
	); err != nil {
		return Scan{}, fmt.Errorf("scan row: %w", err)
	}
	sc.Timestamp = time.Unix(scannedAt, 0).UTC()
	sc.Motion = motion != 0
	sc.Ghost = ghost != 0
	return sc, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
