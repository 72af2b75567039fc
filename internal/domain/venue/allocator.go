package venue

import (
	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
)

// BestFit picks the room that fits seats with the least unused capacity and
// is free for slot. Equal slack goes to the smallest room id, which is the
// catalog's iteration order. It returns domain.ErrNoVenueAvailable when no
// room qualifies.
func BestFit(c Catalog, events []entities.Event, slot entities.Slot, seats int) (entities.Room, error) {
	if seats <= 0 {
		return entities.Room{}, domain.Invalid("seats", "invalid_seats")
	}
	var (
		best      entities.Room
		bestSlack = -1
	)
	for _, r := range c.rooms {
		if r.Capacity < seats {
			continue
		}
		slack := r.Capacity - seats
		if bestSlack >= 0 && slack >= bestSlack {
			continue
		}
		if !IsAvailable(events, slot, r.ID) {
			continue
		}
		best, bestSlack = r, slack
	}
	if bestSlack < 0 {
		return entities.Room{}, domain.ErrNoVenueAvailable
	}
	return best, nil
}

// Excluding returns events without the first one named name. The input
// slice is left untouched.
func Excluding(events []entities.Event, name string) []entities.Event {
	out := make([]entities.Event, 0, len(events))
	skipped := false
	for _, e := range events {
		if !skipped && e.Name == name {
			skipped = true
			continue
		}
		out = append(out, e)
	}
	return out
}
