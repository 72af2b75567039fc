package flatfile

import (
	"context"

	"venuebook/internal/domain/entities"
	"venuebook/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository keeps events in a single text file, one per line.
type EventRepository struct {
	path string
}

func NewEventRepository(path string) *EventRepository {
	return &EventRepository{path: path}
}

func (r *EventRepository) LoadAll(ctx context.Context) ([]entities.Event, error) {
	return readRecords(r.path, recordToEvent)
}

func (r *EventRepository) Append(ctx context.Context, event *entities.Event) error {
	return appendRecord(r.path, eventToRecord(event))
}

func (r *EventRepository) OverwriteAll(ctx context.Context, events []entities.Event) error {
	records := make([][]string, len(events))
	for i := range events {
		records[i] = eventToRecord(&events[i])
	}
	return rewrite(r.path, records)
}
