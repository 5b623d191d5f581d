package simulator

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"housesim/internal/config"
	"housesim/internal/model"
	"housesim/internal/weather"
)

// hoursPerDay is the number of ticks in one simulated day.
const hoursPerDay = 24

// State represents the engine's clock and run state.
type State struct {
	Day      int  `json:"day"`
	Hour     int  `json:"hour"`
	Step     int  `json:"step"`
	Running  bool `json:"running"`
	Finished bool `json:"finished"`
}

// Summary holds the end-of-run statistics.
type Summary struct {
	TotalEnergyKWh    float64                         `json:"total_energy_kwh"`
	AvgDailyKWh       float64                         `json:"avg_daily_consumption_kwh"`
	TotalCostEUR      float64                         `json:"total_cost_eur"`
	AvgMonthlyCostEUR float64                         `json:"avg_monthly_cost_eur"`
	ByAppliance       map[model.ApplianceType]float64 `json:"consumption_by_appliance"`
	SimulationDays    int                             `json:"simulation_days"`
	Houses            int                             `json:"num_houses"`
}

// Callback receives simulation events. Implementations must not call back
// into the engine.
type Callback interface {
	OnState(state State)
	OnSample(sample model.Sample)
	OnSummary(summary Summary)
}

// NopCallback discards all events.
type NopCallback struct{}

func (NopCallback) OnState(State)         {}
func (NopCallback) OnSample(model.Sample) {}
func (NopCallback) OnSummary(Summary)     {}

// MultiCallback fans events out to several callbacks in order.
type MultiCallback []Callback

func (m MultiCallback) OnState(s State) {
	for _, cb := range m {
		cb.OnState(s)
	}
}

func (m MultiCallback) OnSample(s model.Sample) {
	for _, cb := range m {
		cb.OnSample(s)
	}
}

func (m MultiCallback) OnSummary(s Summary) {
	for _, cb := range m {
		cb.OnSummary(s)
	}
}

// Engine advances a set of houses hour by hour through a configured number of
// simulated days. All agent updates within a tick happen in one fixed phase
// order on a single goroutine: weather, room temperatures, occupant moves,
// smart-shutoff sweep, appliance accrual, metrics. The seeded random source
// is the only shared mutable state, so two engines built from the same
// configuration produce identical trajectories.
type Engine struct {
	mu  sync.Mutex
	cfg config.Config
	cb  Callback

	rng     *rand.Rand
	weather *weather.Generator
	houses  []*House

	day, hour  int
	steps      int
	totalSteps int
	totalKWh   float64
	daily      []float64

	running bool
	speed   float64 // simulated hours per wall-clock second
	stopCh  chan struct{}
}

// New builds an engine and its world from the configuration. The same
// configuration (including seed) always builds the same world.
func New(cfg config.Config, cb Callback) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cb == nil {
		cb = NopCallback{}
	}

	e := &Engine{
		cfg:   cfg,
		cb:    cb,
		speed: hoursPerDay, // one simulated day per second by default
	}
	e.buildWorld()
	return e, nil
}

// buildWorld constructs the rng, weather generator and houses from the
// config. Must be called with mu held (or before the engine is shared).
func (e *Engine) buildWorld() {
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))
	e.weather = weather.NewGenerator(e.cfg.Scenario, e.rng)

	profile := StandardProfile()
	if e.cfg.Profile == "lunch" {
		profile = LunchProfile()
	}

	e.houses = e.houses[:0]
	for i := 0; i < e.cfg.Houses; i++ {
		occupants := int(e.rng.NormFloat64()*0.5 + float64(e.cfg.Occupants))
		if occupants < 1 {
			occupants = 1
		}
		insulation := e.rng.NormFloat64()*0.15 + e.cfg.Insulation
		if insulation < 0.1 {
			insulation = 0.1
		}
		if insulation > 1.0 {
			insulation = 1.0
		}
		e.houses = append(e.houses, NewHouse(e.cfg.Rooms, occupants, insulation, e.cfg.SmartPolicy, profile, e.rng))
	}

	e.day = 0
	e.hour = 0
	e.steps = 0
	e.totalSteps = e.cfg.Days * hoursPerDay
	e.totalKWh = 0
	e.daily = nil
}

// Houses returns the simulated houses. The world is fixed after construction,
// so callers must not mutate it.
func (e *Engine) Houses() []*House {
	return e.houses
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// State returns the current clock and run state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	return State{
		Day:      e.day,
		Hour:     e.hour,
		Step:     e.steps,
		Running:  e.running,
		Finished: e.steps >= e.totalSteps,
	}
}

// TotalEnergyKWh returns the cumulative consumption so far.
func (e *Engine) TotalEnergyKWh() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalKWh
}

// DailyConsumption returns the cumulative totals sampled at each day rollover.
func (e *Engine) DailyConsumption() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]float64, len(e.daily))
	copy(out, e.daily)
	return out
}

// Step advances the simulation by one hour. A no-op once the configured step
// count has been reached.
func (e *Engine) Step() {
	e.mu.Lock()
	if e.steps >= e.totalSteps {
		e.mu.Unlock()
		return
	}

	sample := e.tickLocked()
	state := e.stateLocked()
	e.mu.Unlock()

	e.cb.OnSample(sample)
	e.cb.OnState(state)
	if state.Finished {
		e.cb.OnSummary(e.Summary())
	}
}

// tickLocked runs one hour of simulation and returns the metrics sample.
// Must be called with mu held.
func (e *Engine) tickLocked() model.Sample {
	w := e.weather.At(e.day, e.hour)

	// Phase 1: building thermal state.
	for _, h := range e.houses {
		h.UpdateTemperatures(w)
	}

	// Phase 2: occupant routines, movement and appliance operation.
	for _, h := range e.houses {
		for _, p := range h.Occupants {
			p.Step(e.hour)
		}
	}

	// Phase 3: smart-shutoff sweep, after all moves have settled.
	for _, h := range e.houses {
		h.EnforceSmartShutoff()
	}

	// Phase 4: consumption accrual.
	for _, h := range e.houses {
		for _, r := range h.Rooms {
			for _, a := range r.Appliances {
				e.totalKWh += a.Tick()
			}
		}
	}

	sample := model.Sample{
		TotalEnergyKWh: e.totalKWh,
		AvgHouseTemp:   e.avgTempLocked(),
		ExternalTemp:   w.Temperature,
		Hour:           e.hour,
		Day:            e.day,
		CostEUR:        e.totalKWh * e.cfg.PricePerKWh,
	}

	// Phase 5: advance the clock. On wraparound the day's cumulative total
	// is appended to the daily series.
	e.hour = (e.hour + 1) % hoursPerDay
	if e.hour == 0 {
		e.day++
		e.daily = append(e.daily, e.totalKWh)
	}
	e.steps++
	if e.steps >= e.totalSteps {
		e.running = false
	}

	return sample
}

func (e *Engine) avgTempLocked() float64 {
	var sum float64
	n := 0
	for _, h := range e.houses {
		for _, r := range h.Rooms {
			sum += r.Temperature
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Run steps the simulation to completion.
func (e *Engine) Run() Summary {
	for !e.State().Finished {
		e.Step()
	}
	return e.Summary()
}

// Reset rebuilds the world from the configuration and seed, discarding all
// accumulated state.
func (e *Engine) Reset() {
	e.mu.Lock()
	if e.running {
		e.running = false
		close(e.stopCh)
	}
	e.buildWorld()
	state := e.stateLocked()
	e.mu.Unlock()

	e.cb.OnState(state)
}

// Summary recomputes the end-of-run statistics from the appliances.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	byAppliance := make(map[model.ApplianceType]float64)
	for _, h := range e.houses {
		for _, r := range h.Rooms {
			for _, a := range r.Appliances {
				if a.TotalKWh() > 0 {
					byAppliance[a.Type] += a.TotalKWh()
				}
			}
		}
	}

	totalCost := e.totalKWh * e.cfg.PricePerKWh
	days := float64(e.cfg.Days)

	return Summary{
		TotalEnergyKWh:    e.totalKWh,
		AvgDailyKWh:       e.totalKWh / days,
		TotalCostEUR:      totalCost,
		AvgMonthlyCostEUR: totalCost / days * 30,
		ByAppliance:       byAppliance,
		SimulationDays:    e.cfg.Days,
		Houses:            e.cfg.Houses,
	}
}

// SetSpeed sets the playback speed in simulated hours per wall-clock second.
func (e *Engine) SetSpeed(hoursPerSecond float64) {
	if hoursPerSecond < 0.1 {
		hoursPerSecond = 0.1
	}
	if hoursPerSecond > 3600 {
		hoursPerSecond = 3600
	}

	e.mu.Lock()
	e.speed = hoursPerSecond
	state := e.stateLocked()
	e.mu.Unlock()

	e.cb.OnState(state)
}

// Speed returns the playback speed in simulated hours per second.
func (e *Engine) Speed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// Start begins paced playback on a background goroutine. Ticks are still
// applied sequentially; pacing only decides when the next Step happens.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running || e.steps >= e.totalSteps {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.stopCh = make(chan struct{})
	state := e.stateLocked()
	e.mu.Unlock()

	e.cb.OnState(state)
	go e.loop()
}

// Pause stops paced playback before the next step.
func (e *Engine) Pause() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.stopCh)
	state := e.stateLocked()
	e.mu.Unlock()

	e.cb.OnState(state)
}

const tickInterval = 100 * time.Millisecond

func (e *Engine) loop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	var pending float64
	for {
		e.mu.Lock()
		stopCh := e.stopCh
		speed := e.speed
		running := e.running
		e.mu.Unlock()

		if !running {
			return
		}

		select {
		case <-stopCh:
			return
		case <-ticker.C:
			pending += speed * tickInterval.Seconds()
			for pending >= 1 {
				pending--
				e.Step()
				if e.State().Finished {
					return
				}
			}
		}
	}
}
