package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"venuebook/internal/domain/entities"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func dateToPg(s string) (pgtype.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("date %q: %w", s, err)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

func pgToDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}

// clockToPg converts HH:MM into a TIME value (microseconds since midnight).
func clockToPg(s string) (pgtype.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return pgtype.Time{}, fmt.Errorf("time %q: %w", s, err)
	}
	us := int64(t.Hour())*int64(time.Hour/time.Microsecond) + int64(t.Minute())*int64(time.Minute/time.Microsecond)
	return pgtype.Time{Microseconds: us, Valid: true}, nil
}

func pgToClock(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}
	minutes := t.Microseconds / int64(time.Minute/time.Microsecond)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// eventRow is the column layout of the events table.
type eventRow struct {
	Name      string
	Organizer string
	Category  string
	Date      pgtype.Date
	StartTime pgtype.Time
	EndTime   pgtype.Time
	Seats     int32
	Venue     string
}

func eventToRow(e *entities.Event) (eventRow, error) {
	date, err := dateToPg(e.Date)
	if err != nil {
		return eventRow{}, err
	}
	start, err := clockToPg(e.StartTime)
	if err != nil {
		return eventRow{}, err
	}
	end, err := clockToPg(e.EndTime)
	if err != nil {
		return eventRow{}, err
	}
	return eventRow{
		Name:      e.Name,
		Organizer: e.Organizer,
		Category:  string(e.Category),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Seats:     int32(e.Seats),
		Venue:     e.Venue,
	}, nil
}

func eventToDomain(r eventRow) entities.Event {
	return entities.Event{
		Name:      r.Name,
		Organizer: r.Organizer,
		Category:  entities.Category(r.Category),
		Date:      pgToDate(r.Date),
		StartTime: pgToClock(r.StartTime),
		EndTime:   pgToClock(r.EndTime),
		Seats:     int(r.Seats),
		Venue:     r.Venue,
	}
}
