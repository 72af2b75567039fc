package entities

// Room is a bookable venue with a fixed seat capacity.
type Room struct {
	ID       string `toml:"id"`
	Capacity int    `toml:"capacity"`
}
