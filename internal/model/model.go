package model

// RoomType identifies a room's function within a house.
type RoomType string

const (
	RoomKitchen    RoomType = "kitchen"
	RoomLivingRoom RoomType = "living_room"
	RoomBedroom    RoomType = "bedroom"
	RoomBathroom   RoomType = "bathroom"
	RoomHallway    RoomType = "hallway"
)

// RoomTypes lists all room types in house construction order.
var RoomTypes = []RoomType{
	RoomKitchen,
	RoomLivingRoom,
	RoomBedroom,
	RoomBathroom,
	RoomHallway,
}

// RoomHasWindow tells whether a room type gets daylight.
var RoomHasWindow = map[RoomType]bool{
	RoomKitchen:    true,
	RoomLivingRoom: true,
	RoomBedroom:    true,
	RoomBathroom:   false,
	RoomHallway:    false,
}

// ApplianceType identifies a kind of household appliance.
type ApplianceType string

const (
	ApplianceRefrigerator   ApplianceType = "refrigerator"
	ApplianceStove          ApplianceType = "stove"
	ApplianceWashingMachine ApplianceType = "washing_machine"
	ApplianceDishwasher     ApplianceType = "dishwasher"
	ApplianceTV             ApplianceType = "tv"
	ApplianceComputer       ApplianceType = "computer"
	ApplianceLights         ApplianceType = "lights"
	ApplianceHeater         ApplianceType = "heater"
	ApplianceAirConditioner ApplianceType = "air_conditioner"
	ApplianceWaterHeater    ApplianceType = "water_heater"
	ApplianceMobileCharger  ApplianceType = "mobile_charger"
)

// PowerDrawKW maps every appliance type to its nominal draw in kW while on.
var PowerDrawKW = map[ApplianceType]float64{
	ApplianceRefrigerator:   0.15,
	ApplianceStove:          2.5,
	ApplianceWashingMachine: 1.5,
	ApplianceDishwasher:     1.8,
	ApplianceTV:             0.15,
	ApplianceComputer:       0.2,
	ApplianceLights:         0.06,
	ApplianceHeater:         2.0,
	ApplianceAirConditioner: 2.5,
	ApplianceWaterHeater:    3.0,
	ApplianceMobileCharger:  0.01,
}

// AlwaysOn marks appliances that run continuously and cannot be switched off.
var AlwaysOn = map[ApplianceType]bool{
	ApplianceRefrigerator: true,
	ApplianceWaterHeater:  true,
}

// RoomAppliances maps every room type to its default appliance fit-out.
var RoomAppliances = map[RoomType][]ApplianceType{
	RoomKitchen: {
		ApplianceRefrigerator,
		ApplianceStove,
		ApplianceDishwasher,
		ApplianceLights,
	},
	RoomLivingRoom: {
		ApplianceTV,
		ApplianceLights,
		ApplianceAirConditioner,
	},
	RoomBedroom: {
		ApplianceLights,
		ApplianceComputer,
		ApplianceMobileCharger,
		ApplianceHeater,
	},
	RoomBathroom: {
		ApplianceLights,
		ApplianceWaterHeater,
	},
	RoomHallway: {
		ApplianceLights,
	},
}

// WeatherScenario selects the outdoor conditions for a run.
type WeatherScenario string

const (
	ScenarioNormal   WeatherScenario = "normal"
	ScenarioHeatwave WeatherScenario = "heatwave"
	ScenarioColdSnap WeatherScenario = "cold_snap"
)

// SmartPolicy decides which appliances auto-shutoff when a room empties.
type SmartPolicy string

const (
	SmartNone SmartPolicy = "none"
	SmartBase SmartPolicy = "base"
	SmartAll  SmartPolicy = "all"
)

// SmartUnderPolicy reports whether an appliance instance is flagged smart.
// The base policy covers lights and mobile chargers only.
func SmartUnderPolicy(p SmartPolicy, at ApplianceType) bool {
	switch p {
	case SmartAll:
		return true
	case SmartBase:
		return at == ApplianceLights || at == ApplianceMobileCharger
	default:
		return false
	}
}

// WeatherCondition is an immutable snapshot of outdoor conditions for one hour.
type WeatherCondition struct {
	Temperature    float64 `json:"temperature"`     // °C
	SolarRadiation float64 `json:"solar_radiation"` // W/m², never negative
	HourOfDay      int     `json:"hour_of_day"`
	IsExtremeEvent bool    `json:"is_extreme_event"`
}

// Sample is the flat per-tick metrics record handed to sinks.
type Sample struct {
	TotalEnergyKWh float64 `json:"total_energy_kwh"`
	AvgHouseTemp   float64 `json:"avg_house_temp"`
	ExternalTemp   float64 `json:"external_temp"`
	Hour           int     `json:"hour"`
	Day            int     `json:"day"`
	CostEUR        float64 `json:"cost_eur"`
}
