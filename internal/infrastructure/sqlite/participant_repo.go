package sqlite

import (
	"context"
	"database/sql"

	"venuebook/internal/domain/entities"
	"venuebook/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

type ParticipantRepository struct {
	db *sql.DB
}

func NewParticipantRepository(db *sql.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) LoadAll(ctx context.Context) ([]entities.Participant, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, roll_number, department, phone, event_name FROM participants ORDER BY id")
	if err != nil {
		return nil, storeErr("list participants", err)
	}
	defer rows.Close()

	var out []entities.Participant
	for rows.Next() {
		var p entities.Participant
		if err := rows.Scan(&p.Name, &p.RollNumber, &p.Department, &p.Phone, &p.EventName); err != nil {
			return nil, storeErr("scan participant", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list participants", err)
	}
	return out, nil
}

func (r *ParticipantRepository) Append(ctx context.Context, p *entities.Participant) error {
	stmt, err := r.db.PrepareContext(ctx,
		"INSERT INTO participants (name, roll_number, department, phone, event_name) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return storeErr("prepare insert", err)
	}
	defer stmt.Close()
	if _, err := stmt.ExecContext(ctx, p.Name, p.RollNumber, p.Department, p.Phone, p.EventName); err != nil {
		return storeErr("insert participant", err)
	}
	return nil
}
