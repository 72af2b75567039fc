package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
	"venuebook/internal/ports/output"
)

type ParticipantService struct {
	mu              sync.Mutex
	participantRepo output.ParticipantRepository
	eventRepo       output.EventRepository
}

func NewParticipantService(
	participantRepo output.ParticipantRepository,
	eventRepo output.EventRepository,
) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
	}
}

// Register records p for an existing event. A roll number registers once
// per event and registrations stop at the event's seat count. Registrations
// are keyed by event name, so an event re-created under a deleted event's
// name keeps that event's registrations.
func (s *ParticipantService) Register(ctx context.Context, p *entities.Participant) error {
	if err := normalizeParticipant(p); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.eventRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	i := indexOf(events, p.EventName)
	if i < 0 {
		return domain.ErrEventNotFound
	}
	event := events[i]

	participants, err := s.participantRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load participants: %w", err)
	}
	registered := 0
	for _, other := range participants {
		if other.EventName != p.EventName {
			continue
		}
		if strings.EqualFold(other.RollNumber, p.RollNumber) {
			return domain.ErrAlreadyRegistered
		}
		registered++
	}
	if registered >= event.Seats {
		return domain.ErrEventFull
	}

	if err := s.participantRepo.Append(ctx, p); err != nil {
		return fmt.Errorf("append participant: %w", err)
	}
	log.WithFields(log.Fields{
		"event": p.EventName,
		"roll":  p.RollNumber,
	}).Info("✅ Participant registered")
	return nil
}

// RegistrationCounts returns the number of registrations per event name.
func (s *ParticipantService) RegistrationCounts(ctx context.Context) (map[string]int, error) {
	participants, err := s.participantRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	counts := make(map[string]int, len(participants))
	for _, p := range participants {
		counts[p.EventName]++
	}
	return counts, nil
}
