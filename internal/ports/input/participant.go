package input

import (
	"context"

	"venuebook/internal/domain/entities"
)

type ParticipantUseCase interface {
	Register(ctx context.Context, participant *entities.Participant) error
	RegistrationCounts(ctx context.Context) (map[string]int, error)
}
