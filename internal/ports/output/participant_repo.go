package output

import (
	"context"

	"venuebook/internal/domain/entities"
)

type ParticipantRepository interface {
	LoadAll(ctx context.Context) ([]entities.Participant, error)
	Append(ctx context.Context, participant *entities.Participant) error
}
