package application

import (
	"context"
	"fmt"

	"venuebook/internal/domain/entities"
	"venuebook/internal/domain/venue"
	"venuebook/internal/ports/output"
)

// Allocator picks rooms against a fresh read of the event store. It never
// writes; persisting the allocated event is the caller's job.
type Allocator struct {
	catalog   venue.Catalog
	eventRepo output.EventRepository
}

func NewAllocator(catalog venue.Catalog, eventRepo output.EventRepository) *Allocator {
	return &Allocator{catalog: catalog, eventRepo: eventRepo}
}

// Allocate returns the best-fit free room for slot and seats.
func (a *Allocator) Allocate(ctx context.Context, slot entities.Slot, seats int) (entities.Room, error) {
	return a.Reallocate(ctx, slot, seats, "")
}

// Reallocate is Allocate with the event named exclude left out of the
// conflict check, so an event being modified does not collide with its own
// booking. An empty exclude keeps every event.
func (a *Allocator) Reallocate(ctx context.Context, slot entities.Slot, seats int, exclude string) (entities.Room, error) {
	events, err := a.eventRepo.LoadAll(ctx)
	if err != nil {
		return entities.Room{}, fmt.Errorf("load events: %w", err)
	}
	if exclude != "" {
		events = venue.Excluding(events, exclude)
	}
	return venue.BestFit(a.catalog, events, slot, seats)
}

// Catalog returns the rooms the allocator chooses from.
func (a *Allocator) Catalog() venue.Catalog {
	return a.catalog
}
