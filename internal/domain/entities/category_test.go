package entities

import (
	"testing"

	"venuebook/internal/domain"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"Workshop", CategoryWorkshop, false},
		{"  formal event ", CategoryFormalEvent, false},
		{"EXAM", CategoryExam, false},
		{"3", CategoryLecture, false},
		{"6", CategoryMiscellaneous, false},
		{"0", "", true},
		{"7", "", true},
		{"Party", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if domain.Code(err) != "invalid_category" {
				t.Errorf("ParseCategory(%q) error = %v, want invalid_category", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestEventSameSchedule(t *testing.T) {
	a := Event{Name: "A", Date: "2025-03-01", StartTime: "09:00", EndTime: "10:00", Seats: 15}
	b := a
	b.Organizer = "someone else"
	if !a.SameSchedule(&b) {
		t.Error("organizer change should not count as a schedule change")
	}
	b.Seats = 16
	if a.SameSchedule(&b) {
		t.Error("seat change should count as a schedule change")
	}
}
