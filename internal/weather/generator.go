package weather

import (
	"math"
	"math/rand"

	"housesim/internal/model"
)

// Base outdoor temperature for the normal scenario (°C).
const baseTemperature = 15.0

// noiseSigma is the standard deviation of the Gaussian perturbation (°C).
const noiseSigma = 2.0

// Generator produces hourly outdoor conditions for a weather scenario.
// Apart from the noise term drawn from rng, output is a pure function of
// (day, hour, scenario), so a seeded source makes runs reproducible.
type Generator struct {
	scenario model.WeatherScenario
	rng      *rand.Rand
}

func NewGenerator(scenario model.WeatherScenario, rng *rand.Rand) *Generator {
	return &Generator{scenario: scenario, rng: rng}
}

// Scenario returns the generator's configured scenario.
func (g *Generator) Scenario() model.WeatherScenario {
	return g.scenario
}

// At returns the conditions for the given simulated day and hour [0,23].
func (g *Generator) At(day, hour int) model.WeatherCondition {
	var (
		baseTemp  float64
		isExtreme bool
	)
	switch g.scenario {
	case model.ScenarioHeatwave:
		baseTemp = 35.0
		isExtreme = true
	case model.ScenarioColdSnap:
		baseTemp = -5.0
		isExtreme = true
	default:
		// Slow ~30-day oscillation around the base.
		baseTemp = baseTemperature + 5*math.Sin(float64(day)*math.Pi/15)
	}

	// Diurnal cycle: sunrise at 06:00, peak at noon.
	dailyVariation := 5 * math.Sin(float64(hour-6)*math.Pi/12)
	temperature := baseTemp + dailyVariation + g.rng.NormFloat64()*noiseSigma

	solar := 800 * math.Sin(float64(hour-6)*math.Pi/12)
	if solar < 0 {
		solar = 0
	}

	return model.WeatherCondition{
		Temperature:    temperature,
		SolarRadiation: solar,
		HourOfDay:      hour,
		IsExtremeEvent: isExtreme,
	}
}
