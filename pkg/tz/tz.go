package tz

import (
	"fmt"
	"strings"
	"time"
)

// Load resolves a zone name. An empty name or "Local" is the process's
// local zone; anything else goes through the IANA database.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}

// At places a YYYY-MM-DD date and HH:MM clock in loc.
func At(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}
