package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const createSlotsTable = `
CREATE TABLE IF NOT EXISTS local_slots (
	name  TEXT PRIMARY KEY,
	value BLOB NOT NULL
);
`

// SQLiteSlot stores the slot as one row of an embedded SQLite database.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

// OpenSQLiteSlot opens (or creates) the database at path.
func OpenSQLiteSlot(ctx context.Context, path, name string) (*SQLiteSlot, error) {
	if name == "" {
		name = DefaultSlotName
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", path, err)
	}
	// One writer at a time; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", path, err)
	}
	if _, err = db.ExecContext(ctx, createSlotsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create local_slots table: %w", err)
	}

	return &SQLiteSlot{db: db, name: name}, nil
}

func (s *SQLiteSlot) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_slots WHERE name = ?`, s.name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", s.name, err)
	}
	return value, nil
}

func (s *SQLiteSlot) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_slots (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, s.name, data)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", s.name, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
