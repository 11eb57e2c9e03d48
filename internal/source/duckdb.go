package source

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB database holding named interval sets. It stores
// interval data only; built indexes are always reconstructed in memory.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func OpenStore(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS intervals (
		set_name VARCHAR NOT NULL,
		ord INTEGER NOT NULL,
		name VARCHAR,
		start_value BIGINT NOT NULL,
		end_value BIGINT NOT NULL,
		PRIMARY KEY (set_name, ord)
	)`)
	return err
}

// WriteIntervals replaces the named interval set with ivs in one
// transaction. Positions within ivs are preserved as ord.
func (s *Store) WriteIntervals(set string, ivs []Interval) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM intervals WHERE set_name = ?`, set); err != nil {
		return fmt.Errorf("clear interval set %q: %w", set, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO intervals (set_name, ord, name, start_value, end_value) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, iv := range ivs {
		if _, err := stmt.Exec(set, i, iv.Name, iv.Start, iv.End); err != nil {
			return fmt.Errorf("insert interval %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit intervals: %w", err)
	}
	return nil
}

// LoadIntervals returns the named interval set in stored order, or an
// error if the set does not exist.
func (s *Store) LoadIntervals(set string) ([]Interval, error) {
	rows, err := s.db.Query(`SELECT name, start_value, end_value FROM intervals WHERE set_name = ? ORDER BY ord`, set)
	if err != nil {
		return nil, fmt.Errorf("query interval set %q: %w", set, err)
	}
	defer rows.Close()

	var intervals []Interval
	for rows.Next() {
		var iv Interval
		if err := rows.Scan(&iv.Name, &iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("scan interval: %w", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read interval set %q: %w", set, err)
	}
	if intervals == nil {
		return nil, fmt.Errorf("interval set %q not found", set)
	}

	return intervals, nil
}

// Sets returns the names of all stored interval sets, sorted.
func (s *Store) Sets() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT set_name FROM intervals ORDER BY set_name`)
	if err != nil {
		return nil, fmt.Errorf("query interval sets: %w", err)
	}
	defer rows.Close()

	var sets []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan set name: %w", err)
		}
		sets = append(sets, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read interval sets: %w", err)
	}

	return sets, nil
}
