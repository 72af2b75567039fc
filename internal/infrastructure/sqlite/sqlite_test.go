package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"venuebook/internal/domain/entities"
)

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "venuebook.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	events := NewEventRepository(db)
	a := entities.Event{Name: "Go 101", Organizer: "Iyer", Category: entities.CategoryWorkshop,
		Date: "2025-03-01", StartTime: "09:00", EndTime: "10:00", Seats: 15, Venue: "ITB lab 1"}
	b := entities.Event{Name: "Viva", Organizer: "Rao", Category: entities.CategoryExam,
		Date: "2025-03-01", StartTime: "10:00", EndTime: "12:00", Seats: 30, Venue: "Room 1"}
	for _, e := range []entities.Event{a, b} {
		e := e
		if err := events.Append(ctx, &e); err != nil {
			t.Fatal(err)
		}
	}
	got, err := events.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("loaded %+v", got)
	}

	b.Seats = 35
	if err := events.OverwriteAll(ctx, []entities.Event{b}); err != nil {
		t.Fatal(err)
	}
	got, err = events.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != b {
		t.Fatalf("after overwrite %+v", got)
	}

	participants := NewParticipantRepository(db)
	p := entities.Participant{Name: "Asha", RollNumber: "IT-01", Department: "IT", Phone: "98765", EventName: "Viva"}
	if err := participants.Append(ctx, &p); err != nil {
		t.Fatal(err)
	}
	ps, err := participants.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 1 || ps[0] != p {
		t.Fatalf("participants %+v", ps)
	}
}
