package entities

// Participant is a person's registration for an event.
type Participant struct {
	Name       string
	RollNumber string
	Department string
	Phone      string
	EventName  string
}
