package application

import (
	"context"

	"venuebook/internal/domain/entities"
)

type memEventRepo struct {
	events     []entities.Event
	loads      int
	overwrites int
	loadErr    error
}

func (r *memEventRepo) LoadAll(ctx context.Context) ([]entities.Event, error) {
	r.loads++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]entities.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *memEventRepo) Append(ctx context.Context, event *entities.Event) error {
	r.events = append(r.events, *event)
	return nil
}

func (r *memEventRepo) OverwriteAll(ctx context.Context, events []entities.Event) error {
	r.overwrites++
	r.events = make([]entities.Event, len(events))
	copy(r.events, events)
	return nil
}

type memParticipantRepo struct {
	participants []entities.Participant
}

func (r *memParticipantRepo) LoadAll(ctx context.Context) ([]entities.Participant, error) {
	out := make([]entities.Participant, len(r.participants))
	copy(out, r.participants)
	return out, nil
}

func (r *memParticipantRepo) Append(ctx context.Context, p *entities.Participant) error {
	r.participants = append(r.participants, *p)
	return nil
}
