package catalog

import (
	"errors"

	"roomBooker/internal/models"
)

var ErrLocationNotFound = errors.New("location not found")

// Catalog is the fixed set of locations, their rooms and the capacity rules of rooms.
type Catalog struct {
	rooms      map[string][]string
	capacities map[string]models.Capacity
}

func New(rooms map[string][]string, capacities map[string]models.Capacity) *Catalog {
	return &Catalog{
		rooms:      rooms,
		capacities: capacities,
	}
}

func Default() *Catalog {
	return New(
		map[string][]string{
			"New Cairo": {
				"Main Stage",
				"The Premiere Room",
				"The Briefing Room",
				"The Vision Hall",
			},
			"Zayed": {
				"Main Stage West",
				"The Lounge Room",
			},
		},
		map[string]models.Capacity{
			"Main Stage":        {Min: 10, Max: 22},
			"The Premiere Room": {Min: 6, Max: 12},
			"The Briefing Room": {Min: 2, Max: 10},
			"The Vision Hall":   {Min: 2, Max: 10},
			"Main Stage West":   {Min: 8, Max: 15},
			"The Lounge Room":   {Min: 4, Max: 10},
		},
	)
}

// RoomsFor returns a copy of the room list of location.
func (c *Catalog) RoomsFor(location string) ([]string, error) {
	rooms, ok := c.rooms[location]
	if !ok || location == "" {
		return nil, ErrLocationNotFound
	}

	return append([]string(nil), rooms...), nil
}

// CapacityFor reports the capacity rule of roomName; false means the room is unconstrained.
func (c *Catalog) CapacityFor(roomName string) (models.Capacity, bool) {
	capacity, ok := c.capacities[roomName]
	return capacity, ok
}
