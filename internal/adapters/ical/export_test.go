package ical

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"venuebook/internal/domain/entities"
)

func TestWriteRoundTrip(t *testing.T) {
	x := NewExporter(time.UTC)
	x.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	events := []entities.Event{
		{Name: "Hackathon", Organizer: "Alice", Category: entities.CategoryWorkshop,
			Date: "2025-03-01", StartTime: "09:00", EndTime: "10:30", Seats: 15, Venue: "ITB lab 1"},
		{Name: "Finals", Organizer: "Bob", Category: entities.CategoryExam,
			Date: "2025-03-02", StartTime: "13:00", EndTime: "15:00", Seats: 60, Venue: "IT room"},
	}

	var buf bytes.Buffer
	if err := x.Write(&buf, events); err != nil {
		t.Fatalf("Write: %v", err)
	}

	cal, err := ical.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := cal.Events()
	if len(got) != 2 {
		t.Fatalf("decoded %d events, want 2", len(got))
	}

	ev := got[0]
	if s, _ := ev.Props.Text(ical.PropSummary); s != "Hackathon" {
		t.Errorf("summary = %q", s)
	}
	if loc, _ := ev.Props.Text(ical.PropLocation); loc != "ITB lab 1" {
		t.Errorf("location = %q", loc)
	}
	if uid, _ := ev.Props.Text(ical.PropUID); uid != EventUID("Hackathon") {
		t.Errorf("uid = %q", uid)
	}
	start, err := ev.DateTimeStart(time.UTC)
	if err != nil || !start.Equal(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, %v", start, err)
	}
	end, err := ev.DateTimeEnd(time.UTC)
	if err != nil || !end.Equal(time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("end = %v, %v", end, err)
	}
}

func TestEventUIDStable(t *testing.T) {
	if EventUID("Hackathon") != EventUID("Hackathon") {
		t.Error("uid changes between calls")
	}
	if EventUID("Hackathon") == EventUID("Finals") {
		t.Error("different events share a uid")
	}
}

func TestWriteRejectsBadStoredTime(t *testing.T) {
	x := NewExporter(time.UTC)
	err := x.Write(&bytes.Buffer{}, []entities.Event{{Name: "Broken", Date: "2025-03-01", StartTime: "9", EndTime: "10:00"}})
	if err == nil {
		t.Fatal("expected an error for an unparseable start time")
	}
}
