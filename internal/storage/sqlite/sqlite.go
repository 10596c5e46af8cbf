// Package sqlite provides a SQLite implementation of the storage interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ailedger/ai-ledger/internal/storage"
	"github.com/ailedger/ai-ledger/pkg/types"
	_ "modernc.org/sqlite"
)

// recordColumns is the column list for record queries.
const recordColumns = `stem, id, title, date, author, risk_level, contract_path, entry_path, decoded`

var _ storage.Storage = (*SQLiteStorage)(nil)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// New creates a new SQLite storage instance.
func New(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &SQLiteStorage{
		db:   db,
		path: path,
	}, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Init initializes the database schema.
func (s *SQLiteStorage) Init(ctx context.Context) error {
	// Check current schema version
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		// Table doesn't exist, run all migrations
		version = 0
	}

	// Run migrations that haven't been applied
	for i := version; i < len(migrations); i++ {
		if _, err := s.db.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("failed to run migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Reset deletes all records.
func (s *SQLiteStorage) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("failed to reset records: %w", err)
	}
	return nil
}

// Upsert inserts a record or replaces the one with the same stem.
func (s *SQLiteStorage) Upsert(ctx context.Context, r *types.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(stem) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			date = excluded.date,
			author = excluded.author,
			risk_level = excluded.risk_level,
			contract_path = excluded.contract_path,
			entry_path = excluded.entry_path,
			decoded = excluded.decoded,
			indexed_at = excluded.indexed_at
	`, r.Stem, nullString(r.ID), nullString(r.Title), nullString(r.Date), nullString(r.Author),
		nullString(string(r.RiskLevel)), nullString(r.ContractPath), nullString(r.EntryPath),
		r.Decoded, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

// Get retrieves a record by stem.
func (s *SQLiteStorage) Get(ctx context.Context, stem string) (*types.Record, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+` FROM records WHERE stem = ?
	`, stem))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return r, nil
}

// List returns all records ordered by stem.
func (s *SQLiteStorage) List(ctx context.Context) ([]*types.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM records ORDER BY stem ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Search returns records whose id, title or stem contains query as a literal
// substring (case-insensitive for ASCII), optionally restricted to one risk
// level.
func (s *SQLiteStorage) Search(ctx context.Context, query string, risk types.RiskLevel) ([]*types.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM records
		WHERE (instr(lower(id), lower(?1)) > 0 OR instr(lower(title), lower(?1)) > 0 OR instr(lower(stem), lower(?1)) > 0)
		AND (?2 = '' OR risk_level = ?2)
		ORDER BY stem ASC
	`, query, string(risk))
	if err != nil {
		return nil, fmt.Errorf("failed to search records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// scanRecord scans a record from a SQL row.
func scanRecord(scanner interface{ Scan(...any) error }) (*types.Record, error) {
	var r types.Record
	var id, title, date, author, risk, contractPath, entryPath sql.NullString

	err := scanner.Scan(
		&r.Stem, &id, &title, &date, &author, &risk, &contractPath, &entryPath, &r.Decoded,
	)
	if err != nil {
		return nil, err
	}

	r.ID = id.String
	r.Title = title.String
	r.Date = date.String
	r.Author = author.String
	r.RiskLevel = types.RiskLevel(risk.String)
	r.ContractPath = contractPath.String
	r.EntryPath = entryPath.String

	return &r, nil
}

// scanRecords scans multiple records from SQL rows.
func scanRecords(rows *sql.Rows) ([]*types.Record, error) {
	var records []*types.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// nullString returns a sql.NullString from a string.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
