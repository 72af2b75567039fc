// Package ical writes scheduled events as an iCalendar feed.
package ical

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"venuebook/internal/domain/entities"
	"venuebook/pkg/tz"
)

const productID = "-//venuebook//EN"

var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:venuebook:event"))

// EventUID is stable for an event name, so re-exports update calendar
// entries instead of duplicating them.
func EventUID(name string) string {
	return uuid.NewSHA1(eventNamespace, []byte(name)).String()
}

type Exporter struct {
	loc *time.Location
	now func() time.Time
}

// NewExporter places event times in loc.
func NewExporter(loc *time.Location) *Exporter {
	return &Exporter{loc: loc, now: time.Now}
}

// Calendar builds one VEVENT per event.
func (x *Exporter) Calendar(events []entities.Event) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	stamp := x.now().UTC()
	for i := range events {
		ve, err := x.toICal(&events[i], stamp)
		if err != nil {
			return nil, err
		}
		cal.Children = append(cal.Children, ve)
	}
	return cal, nil
}

func (x *Exporter) toICal(e *entities.Event, stamp time.Time) (*ical.Component, error) {
	start, err := tz.At(e.Date, e.StartTime, x.loc)
	if err != nil {
		return nil, fmt.Errorf("event %s: start: %w", e.Name, err)
	}
	end, err := tz.At(e.Date, e.EndTime, x.loc)
	if err != nil {
		return nil, fmt.Errorf("event %s: end: %w", e.Name, err)
	}

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, EventUID(e.Name))
	ve.Props.SetText(ical.PropSummary, e.Name)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDateTime(ical.PropDateTimeStart, start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, end)
	ve.Props.SetText(ical.PropDescription, fmt.Sprintf("%s by %s, %d seats", e.Category, e.Organizer, e.Seats))
	if e.Venue != "" {
		ve.Props.SetText(ical.PropLocation, e.Venue)
	}
	ve.Props.SetText(ical.PropCategories, string(e.Category))
	return ve, nil
}

// Write encodes events to w.
func (x *Exporter) Write(w io.Writer, events []entities.Event) error {
	cal, err := x.Calendar(events)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}
