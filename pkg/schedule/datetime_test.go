package schedule

import (
	"testing"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		in       string
		wantCode string
	}{
		{"2025-03-01", ""},
		{" 2025-03-01 ", ""},
		{"2024-02-29", ""},
		{"2000-02-29", ""},
		{"1900-01-01", ""},
		{"2100-12-31", ""},
		{"1900-02-29", "invalid_day"},
		{"2023-02-29", "invalid_day"},
		{"2025-04-31", "invalid_day"},
		{"2025-01-00", "invalid_day"},
		{"2025-13-01", "invalid_month"},
		{"2025-00-10", "invalid_month"},
		{"1899-12-31", "invalid_year"},
		{"2101-01-01", "invalid_year"},
		{"01/03/2025", "invalid_date_format"},
		{"2025-3-1", "invalid_date_format"},
		{"", "invalid_date_format"},
	}
	for _, tt := range tests {
		_, err := ValidateDate(tt.in)
		if got := domain.Code(err); got != tt.wantCode {
			t.Errorf("ValidateDate(%q) code = %q, want %q", tt.in, got, tt.wantCode)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00"},
		{"9:05", "09:05"},
		{"23:59", "23:59"},
		{"0:00", "00:00"},
		{"9:30 AM", "09:30"},
		{"9:30am", "09:30"},
		{"12:00 PM", "12:00"},
		{"12:15 am", "00:15"},
		{"3:45 pm", "15:45"},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseClock(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	for _, bad := range []string{"24:00", "9", "09:60", "13:00 PM", "noon", ""} {
		if _, err := ParseClock(bad); domain.Code(err) != "invalid_time_format" {
			t.Errorf("ParseClock(%q) error = %v, want invalid_time_format", bad, err)
		}
	}
}

func TestValidateClockWindow(t *testing.T) {
	ok := []string{"08:00", "8:00 AM", "12:30", "16:00", "4:00 PM"}
	for _, s := range ok {
		if _, err := ValidateClock(s); err != nil {
			t.Errorf("ValidateClock(%q) unexpected error %v", s, err)
		}
	}
	bad := []string{"07:59", "7:00 am", "16:01", "17:00", "5:00 PM"}
	for _, s := range bad {
		if _, err := ValidateClock(s); domain.Code(err) != "outside_booking_window" {
			t.Errorf("ValidateClock(%q) error = %v, want outside_booking_window", s, err)
		}
	}
}

func TestValidateSlot(t *testing.T) {
	got, err := ValidateSlot("2025-03-01", "9:00", "10:30 AM")
	if err != nil {
		t.Fatal(err)
	}
	want := entities.Slot{Date: "2025-03-01", Start: "09:00", End: "10:30"}
	if got != want {
		t.Errorf("ValidateSlot() = %+v, want %+v", got, want)
	}

	tests := []struct {
		date, start, end string
		wantCode         string
	}{
		{"2025-03-01", "07:00", "09:00", "outside_booking_window"},
		{"2025-03-01", "10:00", "10:00", "end_before_start"},
		{"2025-03-01", "11:00", "10:00", "end_before_start"},
		{"2025-03-01", "16:00", "16:00", "end_before_start"},
		{"2025-02-30", "09:00", "10:00", "invalid_day"},
	}
	for _, tt := range tests {
		_, err := ValidateSlot(tt.date, tt.start, tt.end)
		if got := domain.Code(err); got != tt.wantCode {
			t.Errorf("ValidateSlot(%s %s-%s) code = %q, want %q", tt.date, tt.start, tt.end, got, tt.wantCode)
		}
	}
}
