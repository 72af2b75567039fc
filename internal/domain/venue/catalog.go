package venue

import (
	"fmt"
	"sort"
	"strings"

	"venuebook/internal/domain/entities"
)

// Catalog is the immutable set of bookable rooms, ordered by room id.
type Catalog struct {
	rooms []entities.Room
}

// DefaultRooms returns the campus rooms used when no catalog file is configured.
func DefaultRooms() []entities.Room {
	return []entities.Room{
		{ID: "Room 1", Capacity: 35},
		{ID: "Room 2", Capacity: 35},
		{ID: "ITB lab 1", Capacity: 20},
		{ID: "ITB lab 2", Capacity: 20},
		{ID: "Project lab", Capacity: 40},
		{ID: "Programming lab", Capacity: 40},
		{ID: "IT room", Capacity: 65},
	}
}

// NewCatalog validates rooms and sorts them by id.
func NewCatalog(rooms []entities.Room) (Catalog, error) {
	if len(rooms) == 0 {
		return Catalog{}, fmt.Errorf("catalog: at least one room is required")
	}
	sorted := make([]entities.Room, len(rooms))
	copy(sorted, rooms)
	seen := make(map[string]bool, len(sorted))
	for i := range sorted {
		sorted[i].ID = strings.TrimSpace(sorted[i].ID)
		r := sorted[i]
		if r.ID == "" {
			return Catalog{}, fmt.Errorf("catalog: room #%d has no id", i+1)
		}
		if seen[r.ID] {
			return Catalog{}, fmt.Errorf("catalog: duplicate room %q", r.ID)
		}
		if r.Capacity <= 0 {
			return Catalog{}, fmt.Errorf("catalog: room %q must have a positive capacity", r.ID)
		}
		seen[r.ID] = true
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return Catalog{rooms: sorted}, nil
}

// MustCatalog is NewCatalog for static room lists known to be valid.
func MustCatalog(rooms []entities.Room) Catalog {
	c, err := NewCatalog(rooms)
	if err != nil {
		panic(err)
	}
	return c
}

// Rooms returns a copy of the rooms in id order.
func (c Catalog) Rooms() []entities.Room {
	out := make([]entities.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// Room looks a room up by id.
func (c Catalog) Room(id string) (entities.Room, bool) {
	i := sort.Search(len(c.rooms), func(i int) bool { return c.rooms[i].ID >= id })
	if i < len(c.rooms) && c.rooms[i].ID == id {
		return c.rooms[i], true
	}
	return entities.Room{}, false
}

// Len returns the number of rooms.
func (c Catalog) Len() int { return len(c.rooms) }
