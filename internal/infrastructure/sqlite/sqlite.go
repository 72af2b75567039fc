// Package sqlite keeps events and participants in an embedded SQLite
// database. Row ids preserve insertion order.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain"
)

// Open opens (or creates) the database at path and makes sure the tables
// exist.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &domain.StoreError{Op: "open", Path: path, Err: err}
	}
	// One connection: the store is single-writer and ":memory:" databases
	// are per connection.
	db.SetMaxOpenConns(1)
	if err := CreateTables(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	log.WithField("path", path).Info("✅ SQLite database ready")
	return db, nil
}

// CreateTables creates the events and participants tables.
func CreateTables(ctx context.Context, db *sql.DB) error {
	eventTable := `CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		organizer TEXT NOT NULL,
		category TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		seats INTEGER NOT NULL,
		venue TEXT NOT NULL DEFAULT ''
	);`

	participantTable := `CREATE TABLE IF NOT EXISTS participants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		roll_number TEXT NOT NULL,
		department TEXT NOT NULL,
		phone TEXT NOT NULL,
		event_name TEXT NOT NULL
	);`

	if _, err := db.ExecContext(ctx, eventTable); err != nil {
		return &domain.StoreError{Op: "create events table", Err: err}
	}
	if _, err := db.ExecContext(ctx, participantTable); err != nil {
		return &domain.StoreError{Op: "create participants table", Err: err}
	}
	return nil
}

func storeErr(op string, err error) error {
	return &domain.StoreError{Op: op, Err: fmt.Errorf("sqlite: %w", err)}
}
