package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
)

// Booking window: events run between OpeningTime and ClosingTime inclusive.
const (
	OpeningTime = "08:00"
	ClosingTime = "16:00"

	minYear = 1900
	maxYear = 2100
)

var (
	datePattern   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	clock12Regexp = regexp.MustCompile(`^(1[0-2]|0?[1-9]):([0-5][0-9])\s?([AaPp][Mm])$`)
	clock24Regexp = regexp.MustCompile(`^(1[0-9]|2[0-3]|0?[0-9]):([0-5][0-9])$`)
)

// ValidateDate checks a YYYY-MM-DD date: year 1900..2100, real month and
// day (leap years included). It returns the trimmed date.
func ValidateDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return "", domain.Invalid("date", "invalid_date_format")
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if year < minYear || year > maxYear {
		return "", domain.Invalid("date", "invalid_year")
	}
	if month < 1 || month > 12 {
		return "", domain.Invalid("date", "invalid_month")
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return "", domain.Invalid("date", "invalid_day")
	}
	return s, nil
}

func daysIn(m time.Month, year int) int {
	// Day 0 of the next month is the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseClock accepts "HH:MM" (24h) or "HH:MM AM/PM" and returns the
// zero-padded 24h form.
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if m := clock12Regexp.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		pm := strings.EqualFold(m[3], "pm")
		switch {
		case pm && hour != 12:
			hour += 12
		case !pm && hour == 12:
			hour = 0
		}
		return fmt.Sprintf("%02d:%s", hour, m[2]), nil
	}
	if m := clock24Regexp.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%02d:%s", hour, m[2]), nil
	}
	return "", domain.Invalid("time", "invalid_time_format")
}

// ValidateClock parses s and checks it falls inside the booking window.
func ValidateClock(s string) (string, error) {
	t, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	if t < OpeningTime || t > ClosingTime {
		return "", domain.Invalid("time", "outside_booking_window")
	}
	return t, nil
}

// ValidateSlot validates a date and a start/end pair and returns the
// normalized slot. The end must come strictly after the start.
func ValidateSlot(date, start, end string) (entities.Slot, error) {
	d, err := ValidateDate(date)
	if err != nil {
		return entities.Slot{}, err
	}
	st, err := ValidateClock(start)
	if err != nil {
		return entities.Slot{}, err
	}
	et, err := ValidateClock(end)
	if err != nil {
		return entities.Slot{}, err
	}
	if st >= et {
		return entities.Slot{}, domain.Invalid("time", "end_before_start")
	}
	return entities.Slot{Date: d, Start: st, End: et}, nil
}
