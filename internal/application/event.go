package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
	"venuebook/internal/domain/venue"
	"venuebook/internal/ports/output"
)

// EventService runs the organizer use cases. Every read-decide-write
// sequence holds mu, so two bookings cannot both pass the availability
// check for the same room.
type EventService struct {
	mu        sync.Mutex
	eventRepo output.EventRepository
	allocator *Allocator
}

func NewEventService(eventRepo output.EventRepository, catalog venue.Catalog) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		allocator: NewAllocator(catalog, eventRepo),
	}
}

// CreateEvent validates event, allocates a room and stores it. On success
// event.Venue holds the allocated room.
func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	if err := normalizeEvent(event); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.eventRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	if indexOf(events, event.Name) >= 0 {
		return domain.ErrDuplicateEventName
	}

	room, err := s.allocator.Allocate(ctx, event.Slot(), event.Seats)
	if err != nil {
		return err
	}
	event.Venue = room.ID

	if err := s.eventRepo.Append(ctx, event); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	log.WithFields(log.Fields{
		"event": event.Name,
		"venue": event.Venue,
		"date":  event.Date,
	}).Info("✅ Event scheduled")
	return nil
}

func (s *EventService) GetEvent(ctx context.Context, name string) (*entities.Event, error) {
	events, err := s.eventRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	i := indexOf(events, strings.TrimSpace(name))
	if i < 0 {
		return nil, domain.ErrEventNotFound
	}
	e := events[i]
	return &e, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	events, err := s.eventRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return events, nil
}

func (s *EventService) ListEventsByOrganizer(ctx context.Context, organizer string) ([]entities.Event, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	organizer = strings.TrimSpace(organizer)
	out := make([]entities.Event, 0, len(events))
	for _, e := range events {
		if e.Organizer == organizer {
			out = append(out, e)
		}
	}
	return out, nil
}

// ModifyEvent replaces the stored event that has event.Name. A change of
// date, window or seats re-allocates the room against every other event;
// otherwise the current room is kept. Nothing is written when re-allocation
// fails.
func (s *EventService) ModifyEvent(ctx context.Context, event *entities.Event) error {
	if err := normalizeEvent(event); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.eventRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	i := indexOf(events, event.Name)
	if i < 0 {
		return domain.ErrEventNotFound
	}

	current := events[i]
	if current.SameSchedule(event) && current.Venue != "" {
		event.Venue = current.Venue
	} else {
		room, err := s.allocator.Reallocate(ctx, event.Slot(), event.Seats, event.Name)
		if err != nil {
			return err
		}
		event.Venue = room.ID
	}

	events[i] = *event
	if err := s.eventRepo.OverwriteAll(ctx, events); err != nil {
		return fmt.Errorf("rewrite events: %w", err)
	}
	log.WithFields(log.Fields{
		"event":    event.Name,
		"venue":    event.Venue,
		"previous": current.Venue,
	}).Info("✅ Event modified")
	return nil
}

// DeleteEvent removes the first event named name.
func (s *EventService) DeleteEvent(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.eventRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	i := indexOf(events, name)
	if i < 0 {
		return domain.ErrEventNotFound
	}
	events = append(events[:i], events[i+1:]...)
	if err := s.eventRepo.OverwriteAll(ctx, events); err != nil {
		return fmt.Errorf("rewrite events: %w", err)
	}
	log.WithField("event", name).Info("🗑️ Event deleted")
	return nil
}

// Rooms returns the catalog used for allocation.
func (s *EventService) Rooms() []entities.Room {
	return s.allocator.Catalog().Rooms()
}
