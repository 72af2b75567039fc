package output

import (
	"context"

	"venuebook/internal/domain/entities"
)

// EventRepository is the canonical, ordered list of events.
type EventRepository interface {
	LoadAll(ctx context.Context) ([]entities.Event, error)
	Append(ctx context.Context, event *entities.Event) error
	OverwriteAll(ctx context.Context, events []entities.Event) error
}
