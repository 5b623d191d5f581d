package simulator

import "housesim/internal/model"

// Appliance tracks the on/off state and energy consumption of one device.
type Appliance struct {
	Type    model.ApplianceType
	PowerKW float64
	Smart   bool

	on        bool
	hoursUsed float64
	totalKWh  float64
}

// NewAppliance creates an appliance of the given type. Refrigerators and
// water heaters start on and stay on for the whole run.
func NewAppliance(t model.ApplianceType, smart bool) *Appliance {
	return &Appliance{
		Type:    t,
		PowerKW: model.PowerDrawKW[t],
		Smart:   smart,
		on:      model.AlwaysOn[t],
	}
}

// On reports whether the appliance is currently running.
func (a *Appliance) On() bool {
	return a.on
}

// TurnOn switches the appliance on. Idempotent.
func (a *Appliance) TurnOn() {
	a.on = true
}

// TurnOff switches the appliance off. A no-op for always-on types, which
// makes the always-on invariant structural rather than checked after the fact.
func (a *Appliance) TurnOff() {
	if model.AlwaysOn[a.Type] {
		return
	}
	a.on = false
}

// Tick accrues one hour of consumption and returns the energy drawn in kWh.
// One tick is one hour, so kWh drawn equals the nominal kW rating.
func (a *Appliance) Tick() float64 {
	if !a.on {
		return 0
	}
	a.totalKWh += a.PowerKW
	a.hoursUsed++
	return a.PowerKW
}

// HoursUsed returns the total hours the appliance has been on.
func (a *Appliance) HoursUsed() float64 {
	return a.hoursUsed
}

// TotalKWh returns the appliance's cumulative consumption.
func (a *Appliance) TotalKWh() float64 {
	return a.totalKWh
}
