package application

import (
	"strings"
	"unicode/utf8"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
	"venuebook/pkg/schedule"
)

// maxTextLen is the longest accepted text field, in characters. Eight of
// them stay well inside one stored line.
const maxTextLen = 200

// cleanText trims s and rejects it when required and empty, when it
// contains line breaks (records are one per line) or when it is too long.
func cleanText(field, s string, required bool) (string, error) {
	s = strings.TrimSpace(s)
	if required && s == "" {
		return "", domain.Invalid(field, "required_"+field)
	}
	if strings.ContainsAny(s, "\r\n") {
		return "", domain.Invalid(field, "invalid_text")
	}
	if utf8.RuneCountInString(s) > maxTextLen {
		return "", domain.Invalid(field, "text_too_long")
	}
	return s, nil
}

// normalizeEvent validates every user-supplied field of e in place and
// clears the venue, which only the allocator may set.
func normalizeEvent(e *entities.Event) error {
	var err error
	if e.Name, err = cleanText("name", e.Name, true); err != nil {
		return err
	}
	if e.Organizer, err = cleanText("organizer", e.Organizer, true); err != nil {
		return err
	}
	if e.Category, err = entities.ParseCategory(string(e.Category)); err != nil {
		return err
	}
	slot, err := schedule.ValidateSlot(e.Date, e.StartTime, e.EndTime)
	if err != nil {
		return err
	}
	e.Date, e.StartTime, e.EndTime = slot.Date, slot.Start, slot.End
	if e.Seats <= 0 {
		return domain.Invalid("seats", "invalid_seats")
	}
	e.Venue = ""
	return nil
}

func normalizeParticipant(p *entities.Participant) error {
	var err error
	if p.EventName, err = cleanText("event", p.EventName, true); err != nil {
		return err
	}
	if p.Name, err = cleanText("name", p.Name, true); err != nil {
		return err
	}
	if p.RollNumber, err = cleanText("roll", p.RollNumber, true); err != nil {
		return err
	}
	if p.Department, err = cleanText("department", p.Department, true); err != nil {
		return err
	}
	if p.Phone, err = cleanText("phone", p.Phone, true); err != nil {
		return err
	}
	return nil
}

func indexOf(events []entities.Event, name string) int {
	for i := range events {
		if events[i].Name == name {
			return i
		}
	}
	return -1
}
