package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"venuebook/internal/domain/entities"
	"venuebook/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository on PostgreSQL.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

func (r *ParticipantRepository) LoadAll(ctx context.Context) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, roll_number, department, phone, event_name
		 FROM participants
		 ORDER BY position`)
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
	_, err := r.pool.Exec(ctx,
		`INSERT INTO participants (name, roll_number, department, phone, event_name)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.Name, p.RollNumber, p.Department, p.Phone, p.EventName,
	)
	if err != nil {
		return storeErr("insert participant", err)
	}
	return nil
}
