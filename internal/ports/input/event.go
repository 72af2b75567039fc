package input

import (
	"context"

	"venuebook/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	GetEvent(ctx context.Context, name string) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	ListEventsByOrganizer(ctx context.Context, organizer string) ([]entities.Event, error)
	ModifyEvent(ctx context.Context, event *entities.Event) error
	DeleteEvent(ctx context.Context, name string) error
}
