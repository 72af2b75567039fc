package entities

// Slot is a half-open time window [Start, End) on Date. Date is YYYY-MM-DD
// and both times are zero-padded HH:MM, so plain string comparison orders
// them chronologically.
type Slot struct {
	Date  string
	Start string
	End   string
}

// Event is a scheduled campus event. Name identifies it. Records are
// replaced as a whole, never patched field by field.
type Event struct {
	Name      string
	Organizer string
	Category  Category
	Date      string
	StartTime string
	EndTime   string
	Seats     int
	Venue     string // empty until a room has been allocated
}

func (e *Event) Slot() Slot {
	return Slot{Date: e.Date, Start: e.StartTime, End: e.EndTime}
}

// SameSchedule reports whether o asks for the same date, window and seats.
func (e *Event) SameSchedule(o *Event) bool {
	return e.Slot() == o.Slot() && e.Seats == o.Seats
}
