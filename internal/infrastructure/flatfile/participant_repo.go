package flatfile

import (
	"context"

	"venuebook/internal/domain/entities"
	"venuebook/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository is an append-only registration log.
type ParticipantRepository struct {
	path string
}

func NewParticipantRepository(path string) *ParticipantRepository {
	return &ParticipantRepository{path: path}
}

func (r *ParticipantRepository) LoadAll(ctx context.Context) ([]entities.Participant, error) {
	return readRecords(r.path, recordToParticipant)
}

func (r *ParticipantRepository) Append(ctx context.Context, participant *entities.Participant) error {
	return appendRecord(r.path, participantToRecord(participant))
}
