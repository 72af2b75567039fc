package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
	"venuebook/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository on PostgreSQL.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const insertEvent = `INSERT INTO events (name, organizer, category, date, start_time, end_time, seats, venue)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *EventRepository) LoadAll(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, organizer, category, date, start_time, end_time, seats, venue
		 FROM events
		 ORDER BY position`)
	if err != nil {
		return nil, storeErr("list events", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		var row eventRow
		if err := rows.Scan(&row.Name, &row.Organizer, &row.Category, &row.Date,
			&row.StartTime, &row.EndTime, &row.Seats, &row.Venue); err != nil {
			return nil, storeErr("scan event", err)
		}
		out = append(out, eventToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list events", err)
	}
	return out, nil
}

func (r *EventRepository) Append(ctx context.Context, event *entities.Event) error {
	row, err := eventToRow(event)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	if _, err := r.pool.Exec(ctx, insertEvent, rowArgs(row)...); err != nil {
		return storeErr("insert event", err)
	}
	return nil
}

// OverwriteAll replaces every row in a single transaction.
func (r *EventRepository) OverwriteAll(ctx context.Context, events []entities.Event) error {
	rows := make([]eventRow, len(events))
	for i := range events {
		row, err := eventToRow(&events[i])
		if err != nil {
			return fmt.Errorf("overwrite events: %w", err)
		}
		rows[i] = row
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM events"); err != nil {
			return storeErr("clear events", err)
		}
		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(insertEvent, rowArgs(row)...)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return storeErr("insert events", err)
		}
		return nil
	})
}

func rowArgs(r eventRow) []any {
	return []any{r.Name, r.Organizer, r.Category, r.Date, r.StartTime, r.EndTime, r.Seats, r.Venue}
}

func storeErr(op string, err error) error {
	return &domain.StoreError{Op: op, Err: fmt.Errorf("postgres: %w", err)}
}
