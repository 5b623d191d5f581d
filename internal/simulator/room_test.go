package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housesim/internal/model"
)

func TestNewRoom_DefaultFitOut(t *testing.T) {
	kitchen := NewRoom(model.RoomKitchen, model.SmartNone)
	assert.True(t, kitchen.HasWindow)
	assert.InDelta(t, 20.0, kitchen.Temperature, 0.001)

	var types []model.ApplianceType
	for _, a := range kitchen.Appliances {
		types = append(types, a.Type)
	}
	assert.Equal(t, model.RoomAppliances[model.RoomKitchen], types)

	bathroom := NewRoom(model.RoomBathroom, model.SmartNone)
	assert.False(t, bathroom.HasWindow)
}

func TestRoom_TemperatureBlend(t *testing.T) {
	room := NewRoom(model.RoomHallway, model.SmartNone) // lights only, no HVAC
	room.Temperature = 20

	room.UpdateTemperature(30, 0.5)
	assert.InDelta(t, 25.0, room.Temperature, 0.001)

	// Monotone blend: result stays between old indoor and outdoor temps.
	room.Temperature = 20
	room.UpdateTemperature(-10, 0.3)
	assert.GreaterOrEqual(t, room.Temperature, -10.0)
	assert.LessOrEqual(t, room.Temperature, 20.0)

	// Perfect insulation holds the indoor temperature.
	room.Temperature = 20
	room.UpdateTemperature(35, 1.0)
	assert.InDelta(t, 20.0, room.Temperature, 0.001)
}

func TestRoom_HeaterAndACOffsets(t *testing.T) {
	bedroom := NewRoom(model.RoomBedroom, model.SmartNone)
	bedroom.Temperature = 20
	heater := bedroom.applianceOfType(model.ApplianceHeater)
	require.NotNil(t, heater)
	heater.TurnOn()

	// Blend to 25, then heater adds exactly 0.5.
	bedroom.UpdateTemperature(30, 0.5)
	assert.InDelta(t, 25.5, bedroom.Temperature, 0.001)

	living := NewRoom(model.RoomLivingRoom, model.SmartNone)
	living.Temperature = 20
	ac := living.applianceOfType(model.ApplianceAirConditioner)
	require.NotNil(t, ac)
	ac.TurnOn()

	living.UpdateTemperature(30, 0.5)
	assert.InDelta(t, 24.5, living.Temperature, 0.001)
}

func TestRoom_SmartShutoffWhenEmpty(t *testing.T) {
	bedroom := NewRoom(model.RoomBedroom, model.SmartAll)
	for _, a := range bedroom.Appliances {
		a.TurnOn()
	}

	require.True(t, bedroom.Empty())
	bedroom.EnforceSmartShutoff()

	for _, a := range bedroom.Appliances {
		assert.False(t, a.On(), "smart %s should be off in an empty room", a.Type)
	}
}

func TestRoom_SmartShutoffSparesNonSmart(t *testing.T) {
	// Base policy: only lights and mobile chargers are smart.
	bedroom := NewRoom(model.RoomBedroom, model.SmartBase)
	for _, a := range bedroom.Appliances {
		a.TurnOn()
	}

	bedroom.EnforceSmartShutoff()

	assert.False(t, bedroom.applianceOfType(model.ApplianceLights).On())
	assert.False(t, bedroom.applianceOfType(model.ApplianceMobileCharger).On())
	assert.True(t, bedroom.applianceOfType(model.ApplianceComputer).On())
	assert.True(t, bedroom.applianceOfType(model.ApplianceHeater).On())
}

func TestRoom_SmartShutoffSkipsOccupiedRoom(t *testing.T) {
	bedroom := NewRoom(model.RoomBedroom, model.SmartAll)
	lights := bedroom.applianceOfType(model.ApplianceLights)
	lights.TurnOn()

	bedroom.addOccupant(&Person{})
	bedroom.EnforceSmartShutoff()
	assert.True(t, lights.On())
}

func TestRoom_SmartShutoffKeepsAlwaysOn(t *testing.T) {
	kitchen := NewRoom(model.RoomKitchen, model.SmartAll)
	kitchen.EnforceSmartShutoff()
	assert.True(t, kitchen.applianceOfType(model.ApplianceRefrigerator).On())
}
