package venue

import "venuebook/internal/domain/entities"

// Overlaps reports whether two windows on the same date intersect. Windows
// are half-open, so back-to-back bookings do not overlap.
func Overlaps(a, b entities.Slot) bool {
	return !(a.End <= b.Start || a.Start >= b.End)
}

// IsAvailable reports whether room is free for slot given the existing
// events. Only events on the same date in the same room are considered.
func IsAvailable(events []entities.Event, slot entities.Slot, room string) bool {
	for i := range events {
		e := &events[i]
		if e.Date != slot.Date || e.Venue != room {
			continue
		}
		if Overlaps(slot, e.Slot()) {
			return false
		}
	}
	return true
}
