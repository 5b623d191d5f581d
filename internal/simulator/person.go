package simulator

import (
	"math/rand"

	"github.com/google/uuid"

	"housesim/internal/model"
)

// Activity labels the routine entry for an hour of the day.
type Activity string

const (
	ActivitySleeping       Activity = "sleeping"
	ActivityMorningRoutine Activity = "morning_routine"
	ActivityAway           Activity = "away"
	ActivityLunch          Activity = "lunch"
	ActivityEvening        Activity = "evening_activities"
)

// Profile bundles a daily routine with the comfort band its occupants keep.
type Profile struct {
	Name string

	// Routine maps each hour [0,23] to an activity. Unmapped hours fall
	// back to evening activities.
	Routine map[int]Activity

	// Comfort band: below ComfortLow the heater goes on, above ComfortHigh
	// the air conditioner does.
	ComfortLow  float64
	ComfortHigh float64

	// Evening hours spent cooking rather than in the living room.
	KitchenHourStart int
	KitchenHourEnd   int
}

// StandardProfile is the default routine: no lunch break at home and a wide
// 18–26 °C comfort band.
func StandardProfile() *Profile {
	r := make(map[int]Activity, 24)
	fillHours(r, 0, 6, ActivitySleeping)
	fillHours(r, 7, 8, ActivityMorningRoutine)
	fillHours(r, 9, 17, ActivityAway)
	fillHours(r, 18, 21, ActivityEvening)
	fillHours(r, 22, 23, ActivitySleeping)
	return &Profile{
		Name:             "standard",
		Routine:          r,
		ComfortLow:       18,
		ComfortHigh:      26,
		KitchenHourStart: 19,
		KitchenHourEnd:   20,
	}
}

// LunchProfile is the alternate routine: a midday lunch block carved out of
// the away hours and a stricter 17–23 °C comfort band.
func LunchProfile() *Profile {
	r := make(map[int]Activity, 24)
	fillHours(r, 0, 6, ActivitySleeping)
	fillHours(r, 7, 8, ActivityMorningRoutine)
	fillHours(r, 9, 11, ActivityAway)
	fillHours(r, 12, 13, ActivityLunch)
	fillHours(r, 14, 17, ActivityAway)
	fillHours(r, 18, 21, ActivityEvening)
	fillHours(r, 22, 23, ActivitySleeping)
	return &Profile{
		Name:             "lunch",
		Routine:          r,
		ComfortLow:       17,
		ComfortHigh:      23,
		KitchenHourStart: 19,
		KitchenHourEnd:   21,
	}
}

func fillHours(r map[int]Activity, from, to int, a Activity) {
	for h := from; h <= to; h++ {
		r[h] = a
	}
}

// Person is a house occupant following a fixed daily routine.
type Person struct {
	ID   uuid.UUID
	Name string

	house           *House
	profile         *Profile
	rng             *rand.Rand
	currentRoom     *Room
	isHome          bool
	energyConscious bool
}

// NewPerson creates an occupant of the given house. Half of all occupants are
// energy conscious, decided by a draw from the run's shared random source.
func NewPerson(name string, house *House, profile *Profile, rng *rand.Rand) *Person {
	return &Person{
		ID:              uuid.New(),
		Name:            name,
		house:           house,
		profile:         profile,
		rng:             rng,
		isHome:          true,
		energyConscious: rng.Float64() < 0.5,
	}
}

// CurrentRoom returns the room the person is in, or nil when absent.
func (p *Person) CurrentRoom() *Room {
	return p.currentRoom
}

// IsHome reports whether the person is in the house.
func (p *Person) IsHome() bool {
	return p.isHome
}

// EnergyConscious reports whether the person turns lights off behind them.
func (p *Person) EnergyConscious() bool {
	return p.energyConscious
}

// Step runs the person's behavior for one hour: look up the routine activity,
// move and operate appliances accordingly, then react to room temperature.
func (p *Person) Step(hour int) {
	activity, ok := p.profile.Routine[hour]
	if !ok {
		activity = ActivityEvening
	}
	p.performActivity(activity, hour)
	p.respondToTemperature()
}

func (p *Person) performActivity(activity Activity, hour int) {
	switch activity {
	case ActivitySleeping:
		if bedroom := p.house.RoomOfType(model.RoomBedroom); bedroom != nil && p.currentRoom != bedroom {
			p.moveToRoom(bedroom, hour)
		}

	case ActivityAway:
		p.leaveHouse()

	case ActivityMorningRoutine:
		p.isHome = true
		if p.rng.Float64() < 0.5 {
			if bathroom := p.house.RoomOfType(model.RoomBathroom); bathroom != nil {
				p.moveToRoom(bathroom, hour)
			}
		}
		if hour == 7 || hour == 8 {
			if kitchen := p.house.RoomOfType(model.RoomKitchen); kitchen != nil {
				p.moveToRoom(kitchen, hour)
				if stove := kitchen.applianceOfType(model.ApplianceStove); stove != nil && p.rng.Float64() < 0.3 {
					stove.TurnOn()
				}
			}
		}

	case ActivityLunch:
		p.isHome = true
		if p.rng.Float64() < 0.6 {
			if kitchen := p.house.RoomOfType(model.RoomKitchen); kitchen != nil {
				p.moveToRoom(kitchen, hour)
				if stove := kitchen.applianceOfType(model.ApplianceStove); stove != nil && p.rng.Float64() < 0.5 {
					stove.TurnOn()
				}
			}
		}
		// Otherwise ordering out, no appliance use.

	case ActivityEvening:
		p.isHome = true
		if hour >= p.profile.KitchenHourStart && hour <= p.profile.KitchenHourEnd {
			if kitchen := p.house.RoomOfType(model.RoomKitchen); kitchen != nil {
				p.moveToRoom(kitchen, hour)
				if stove := kitchen.applianceOfType(model.ApplianceStove); stove != nil {
					stove.TurnOn()
				}
				if dw := kitchen.applianceOfType(model.ApplianceDishwasher); dw != nil && p.rng.Float64() < 0.2 {
					dw.TurnOn()
				}
			}
		} else {
			if living := p.house.RoomOfType(model.RoomLivingRoom); living != nil {
				p.moveToRoom(living, hour)
				if tv := living.applianceOfType(model.ApplianceTV); tv != nil && p.rng.Float64() < 0.7 {
					tv.TurnOn()
				}
			}
		}

		// Charge mobile devices across the house now and then.
		if p.rng.Float64() < 0.3 {
			for _, room := range p.house.Rooms {
				for _, a := range room.Appliances {
					if a.Type == model.ApplianceMobileCharger {
						a.TurnOn()
					}
				}
			}
		}
	}
}

// leaveHouse removes the person from their room and marks them away.
func (p *Person) leaveHouse() {
	if p.currentRoom != nil {
		p.currentRoom.removeOccupant(p)
		p.currentRoom = nil
	}
	p.isHome = false
}

// moveToRoom transfers the person between rooms. Membership is maintained
// here and only here, so a person can never be in two occupant sets at once.
func (p *Person) moveToRoom(room *Room, hour int) {
	if p.currentRoom == room {
		return
	}
	if p.currentRoom != nil {
		p.currentRoom.removeOccupant(p)
		if p.energyConscious && p.currentRoom.Empty() {
			for _, a := range p.currentRoom.Appliances {
				if a.Type == model.ApplianceLights {
					a.TurnOff()
				}
			}
		}
	}

	p.currentRoom = room
	room.addOccupant(p)

	// Lights go on outside daylight hours or in windowless rooms.
	if hour < 7 || hour > 19 || !room.HasWindow {
		for _, a := range room.Appliances {
			if a.Type == model.ApplianceLights {
				a.TurnOn()
			}
		}
	}
}

func (p *Person) respondToTemperature() {
	if !p.isHome || p.currentRoom == nil {
		return
	}

	temp := p.currentRoom.Temperature
	switch {
	case temp < p.profile.ComfortLow:
		if h := p.currentRoom.applianceOfType(model.ApplianceHeater); h != nil {
			h.TurnOn()
		}
	case temp > p.profile.ComfortHigh:
		if ac := p.currentRoom.applianceOfType(model.ApplianceAirConditioner); ac != nil {
			ac.TurnOn()
		}
	default:
		for _, a := range p.currentRoom.Appliances {
			if a.Type == model.ApplianceHeater || a.Type == model.ApplianceAirConditioner {
				a.TurnOff()
			}
		}
	}
}
