package venue

import (
	"testing"

	"venuebook/internal/domain/entities"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(DefaultRooms())
	if err != nil {
		t.Fatal(err)
	}
	rooms := c.Rooms()
	for i := 1; i < len(rooms); i++ {
		if rooms[i-1].ID >= rooms[i].ID {
			t.Fatalf("rooms not sorted: %q before %q", rooms[i-1].ID, rooms[i].ID)
		}
	}
	r, ok := c.Room("IT room")
	if !ok || r.Capacity != 65 {
		t.Errorf("Room(IT room) = %+v, %v", r, ok)
	}
	if _, ok := c.Room("Attic"); ok {
		t.Error("unknown room found")
	}
}

func TestNewCatalogRejects(t *testing.T) {
	tests := map[string][]entities.Room{
		"empty":     nil,
		"no id":     {{ID: " ", Capacity: 3}},
		"duplicate": {{ID: "A", Capacity: 3}, {ID: "A", Capacity: 4}},
		"zero":      {{ID: "A", Capacity: 0}},
	}
	for name, rooms := range tests {
		if _, err := NewCatalog(rooms); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
