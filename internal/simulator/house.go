package simulator

import (
	"fmt"
	"math/rand"

	"housesim/internal/model"
)

// House owns a fixed roster of rooms and occupants. Composition never changes
// after construction.
type House struct {
	Insulation float64 // [0.1, 1.0], higher damps heat exchange more
	Rooms      []*Room
	Occupants  []*Person
}

// NewHouse builds a house from per-room-type counts. Rooms are created in the
// fixed model.RoomTypes order so that identical configurations yield identical
// worlds, and each room is pre-populated with its default appliances under the
// given smart policy.
func NewHouse(roomCounts map[model.RoomType]int, occupants int, insulation float64, policy model.SmartPolicy, profile *Profile, rng *rand.Rand) *House {
	h := &House{Insulation: insulation}

	for _, rt := range model.RoomTypes {
		for i := 0; i < roomCounts[rt]; i++ {
			h.Rooms = append(h.Rooms, NewRoom(rt, policy))
		}
	}

	for i := 0; i < occupants; i++ {
		h.Occupants = append(h.Occupants, NewPerson(fmt.Sprintf("person-%d", i), h, profile, rng))
	}

	return h
}

// RoomOfType returns the first room of the given type, or nil when the house
// has none. Routine branches that target a missing room become no-ops.
func (h *House) RoomOfType(t model.RoomType) *Room {
	for _, r := range h.Rooms {
		if r.Type == t {
			return r
		}
	}
	return nil
}

// UpdateTemperatures recomputes every room's temperature from the current
// outdoor conditions and the house insulation.
func (h *House) UpdateTemperatures(w model.WeatherCondition) {
	for _, r := range h.Rooms {
		r.UpdateTemperature(w.Temperature, h.Insulation)
	}
}

// EnforceSmartShutoff runs the auto-shutoff sweep over all rooms. Must be
// called after the occupants' moves for the hour are applied.
func (h *House) EnforceSmartShutoff() {
	for _, r := range h.Rooms {
		r.EnforceSmartShutoff()
	}
}
