package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"housesim/internal/model"
)

// Config is the full configuration surface consumed by the engine at
// construction time.
type Config struct {
	// Houses is the number of independent houses simulated together.
	Houses int `yaml:"houses"`

	// Rooms maps room types to per-house counts.
	Rooms map[model.RoomType]int `yaml:"rooms"`

	// Occupants is the mean occupant count per house. Individual houses
	// draw from a Gaussian around it (σ=0.5, minimum 1).
	Occupants int `yaml:"occupants"`

	// Insulation is the mean insulation quality. Individual houses draw
	// from a Gaussian around it (σ=0.15) clamped to [0.1, 1.0].
	Insulation float64 `yaml:"insulation"`

	// Days is the simulation length; one run is Days*24 hourly ticks.
	Days int `yaml:"days"`

	// PricePerKWh is the electricity price in EUR. When zero it is
	// resolved from the price source before the run, falling back to the
	// documented default on failure.
	PricePerKWh float64 `yaml:"price_per_kwh"`

	Scenario    model.WeatherScenario `yaml:"scenario"`
	SmartPolicy model.SmartPolicy     `yaml:"smart_policy"`

	// Profile selects the occupant routine: "standard" or "lunch".
	Profile string `yaml:"profile"`

	// Seed for the run's single shared random source.
	Seed int64 `yaml:"seed"`
}

// DefaultPricePerKWh is the fallback electricity price (EUR/kWh) used when no
// price is configured and the external price source is unavailable.
const DefaultPricePerKWh = 0.15

// Default returns the baseline configuration: one house with the standard
// room roster, two occupants, 30 simulated days.
func Default() Config {
	return Config{
		Houses: 1,
		Rooms: map[model.RoomType]int{
			model.RoomKitchen:    1,
			model.RoomLivingRoom: 1,
			model.RoomBedroom:    2,
			model.RoomBathroom:   1,
			model.RoomHallway:    1,
		},
		Occupants:   2,
		Insulation:  0.5,
		Days:        30,
		PricePerKWh: DefaultPricePerKWh,
		Scenario:    model.ScenarioNormal,
		SmartPolicy: model.SmartNone,
		Profile:     "standard",
		Seed:        1,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.Houses < 1 {
		return fmt.Errorf("houses must be >= 1, got %d", c.Houses)
	}
	if c.Occupants < 1 {
		return fmt.Errorf("occupants must be >= 1, got %d", c.Occupants)
	}
	if c.Insulation < 0.1 || c.Insulation > 1.0 {
		return fmt.Errorf("insulation must be in [0.1, 1.0], got %g", c.Insulation)
	}
	if c.Days < 1 {
		return fmt.Errorf("days must be >= 1, got %d", c.Days)
	}
	if c.PricePerKWh < 0 {
		return fmt.Errorf("price_per_kwh must not be negative, got %g", c.PricePerKWh)
	}
	for rt, n := range c.Rooms {
		if n < 0 {
			return fmt.Errorf("room count for %s must not be negative, got %d", rt, n)
		}
		if _, ok := model.RoomHasWindow[rt]; !ok {
			return fmt.Errorf("unknown room type %q", rt)
		}
	}
	switch c.Scenario {
	case model.ScenarioNormal, model.ScenarioHeatwave, model.ScenarioColdSnap:
	default:
		return fmt.Errorf("unknown weather scenario %q", c.Scenario)
	}
	switch c.SmartPolicy {
	case model.SmartNone, model.SmartBase, model.SmartAll:
	default:
		return fmt.Errorf("unknown smart policy %q", c.SmartPolicy)
	}
	switch c.Profile {
	case "standard", "lunch":
	default:
		return fmt.Errorf("unknown profile %q", c.Profile)
	}
	return nil
}
