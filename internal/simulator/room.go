package simulator

import "housesim/internal/model"

// initialRoomTemp is the indoor temperature every room starts at (°C).
const initialRoomTemp = 20.0

// hvacDelta is the per-hour temperature contribution of an active heater
// (positive) or air conditioner (negative).
const hvacDelta = 0.5

// Room owns a set of appliances and tracks its occupants and temperature.
type Room struct {
	Type        model.RoomType
	HasWindow   bool
	Temperature float64
	Appliances  []*Appliance

	occupants []*Person
}

// NewRoom creates a room pre-populated with the default appliance fit-out
// for its type. The smart flag on each appliance follows the given policy.
func NewRoom(t model.RoomType, policy model.SmartPolicy) *Room {
	r := &Room{
		Type:        t,
		HasWindow:   model.RoomHasWindow[t],
		Temperature: initialRoomTemp,
	}
	for _, at := range model.RoomAppliances[t] {
		r.Appliances = append(r.Appliances, NewAppliance(at, model.SmartUnderPolicy(policy, at)))
	}
	return r
}

// Occupants returns the people currently in the room.
func (r *Room) Occupants() []*Person {
	return r.occupants
}

// Empty reports whether nobody is in the room.
func (r *Room) Empty() bool {
	return len(r.occupants) == 0
}

func (r *Room) addOccupant(p *Person) {
	r.occupants = append(r.occupants, p)
}

func (r *Room) removeOccupant(p *Person) {
	for i, o := range r.occupants {
		if o == p {
			r.occupants = append(r.occupants[:i], r.occupants[i+1:]...)
			return
		}
	}
}

// UpdateTemperature blends the room toward the outdoor temperature, damped by
// the house insulation quality, then applies active heating and cooling.
// HVAC contributions are summed, so the result is independent of appliance
// order within the room.
func (r *Room) UpdateTemperature(externalTemp, insulation float64) {
	r.Temperature += (externalTemp - r.Temperature) * (1 - insulation)

	for _, a := range r.Appliances {
		if !a.On() {
			continue
		}
		switch a.Type {
		case model.ApplianceHeater:
			r.Temperature += hvacDelta
		case model.ApplianceAirConditioner:
			r.Temperature -= hvacDelta
		}
	}
}

// EnforceSmartShutoff turns off every smart appliance when the room is empty.
// Must run after all occupant moves for the hour have settled.
func (r *Room) EnforceSmartShutoff() {
	if !r.Empty() {
		return
	}
	for _, a := range r.Appliances {
		if a.Smart {
			a.TurnOff()
		}
	}
}

// applianceOfType returns the first appliance of the given type, or nil.
func (r *Room) applianceOfType(t model.ApplianceType) *Appliance {
	for _, a := range r.Appliances {
		if a.Type == t {
			return a
		}
	}
	return nil
}
