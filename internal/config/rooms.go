package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"venuebook/internal/domain/entities"
	"venuebook/internal/domain/venue"
)

type roomsFile struct {
	Rooms []entities.Room `toml:"room"`
}

// Catalog returns the room catalog from RoomsFile, or the built-in campus
// rooms when no file is configured.
func (c *Config) Catalog() (venue.Catalog, error) {
	if c.RoomsFile == "" {
		return venue.NewCatalog(venue.DefaultRooms())
	}
	return LoadCatalog(c.RoomsFile)
}

// LoadCatalog reads a TOML file of [[room]] tables with id and capacity.
func LoadCatalog(path string) (venue.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return venue.Catalog{}, fmt.Errorf("config: read rooms file: %w", err)
	}
	var f roomsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return venue.Catalog{}, fmt.Errorf("config: parse rooms file %s: %w", path, err)
	}
	catalog, err := venue.NewCatalog(f.Rooms)
	if err != nil {
		return venue.Catalog{}, fmt.Errorf("config: rooms file %s: %w", path, err)
	}
	return catalog, nil
}
