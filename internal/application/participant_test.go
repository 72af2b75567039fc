package application

import (
	"context"
	"errors"
	"testing"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
)

func student(roll, event string) *entities.Participant {
	return &entities.Participant{
		Name:       "Asha",
		RollNumber: roll,
		Department: "IT",
		Phone:      "9876543210",
		EventName:  event,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	events := &memEventRepo{events: []entities.Event{
		{Name: "Go 101", Seats: 2, Venue: "RoomA"},
	}}
	people := &memParticipantRepo{}
	svc := NewParticipantService(people, events)

	if err := svc.Register(ctx, student("IT-01", "Go 101")); err != nil {
		t.Fatal(err)
	}
	if err := svc.Register(ctx, student("it-01", " Go 101 ")); !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Errorf("duplicate error = %v, want ErrAlreadyRegistered", err)
	}
	if err := svc.Register(ctx, student("IT-02", "Go 101")); err != nil {
		t.Fatal(err)
	}
	if err := svc.Register(ctx, student("IT-03", "Go 101")); !errors.Is(err, domain.ErrEventFull) {
		t.Errorf("full error = %v, want ErrEventFull", err)
	}
	if err := svc.Register(ctx, student("IT-04", "Rust 101")); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("unknown event error = %v, want ErrEventNotFound", err)
	}

	p := student("IT-05", "Go 101")
	p.Phone = ""
	if err := svc.Register(ctx, p); domain.Code(err) != "required_phone" {
		t.Errorf("missing phone error = %v", err)
	}

	counts, err := svc.RegistrationCounts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts["Go 101"] != 2 || len(counts) != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestRegistrationsFollowEventName(t *testing.T) {
	ctx := context.Background()
	events := &memEventRepo{events: []entities.Event{
		{Name: "Go 101", Seats: 1, Venue: "RoomA"},
	}}
	people := &memParticipantRepo{participants: []entities.Participant{*student("IT-01", "Go 101")}}
	svc := NewParticipantService(people, events)

	if err := svc.Register(ctx, student("IT-01", "Go 101")); !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Errorf("earlier registration not seen: %v", err)
	}
	if err := svc.Register(ctx, student("IT-02", "Go 101")); !errors.Is(err, domain.ErrEventFull) {
		t.Errorf("earlier registration not counted: %v", err)
	}
}
