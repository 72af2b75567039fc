package sqlite

import (
	"context"
	"database/sql"

	"venuebook/internal/domain/entities"
	"venuebook/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const insertEvent = `INSERT INTO events (name, organizer, category, date, start_time, end_time, seats, venue)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

func (r *EventRepository) LoadAll(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, organizer, category, date, start_time, end_time, seats, venue FROM events ORDER BY id")
	if err != nil {
		return nil, storeErr("list events", err)
	}
	defer rows.Close()

	var events []entities.Event
	for rows.Next() {
		var e entities.Event
		var category string
		if err := rows.Scan(&e.Name, &e.Organizer, &category, &e.Date, &e.StartTime, &e.EndTime, &e.Seats, &e.Venue); err != nil {
			return nil, storeErr("scan event", err)
		}
		e.Category = entities.Category(category)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list events", err)
	}
	return events, nil
}

func (r *EventRepository) Append(ctx context.Context, event *entities.Event) error {
	if _, err := r.db.ExecContext(ctx, insertEvent, eventArgs(event)...); err != nil {
		return storeErr("insert event", err)
	}
	return nil
}

// OverwriteAll replaces the whole table in one transaction.
func (r *EventRepository) OverwriteAll(ctx context.Context, events []entities.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM events"); err != nil {
		return storeErr("clear events", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertEvent)
	if err != nil {
		return storeErr("prepare insert", err)
	}
	defer stmt.Close()
	for i := range events {
		if _, err := stmt.ExecContext(ctx, eventArgs(&events[i])...); err != nil {
			return storeErr("insert event", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storeErr("commit", err)
	}
	return nil
}

func eventArgs(e *entities.Event) []any {
	return []any{e.Name, e.Organizer, string(e.Category), e.Date, e.StartTime, e.EndTime, e.Seats, e.Venue}
}
