package ws

import (
	"encoding/json"

	"housesim/internal/model"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message type constants.
const (
	// Client -> Server
	TypeSimStart    = "sim:start"
	TypeSimPause    = "sim:pause"
	TypeSimReset    = "sim:reset"
	TypeSimSetSpeed = "sim:set_speed"

	// Server -> Client
	TypeSimState      = "sim:state"
	TypeSimSample     = "sim:sample"
	TypeSummaryUpdate = "summary:update"
	TypeRunConfig     = "run:config"
	TypeSampleHistory = "sample:history"
)

// Client -> Server payloads.

type SetSpeedPayload struct {
	HoursPerSecond float64 `json:"hours_per_second"`
}

// Server -> Client payloads. State, Sample and Summary reuse the engine's
// JSON shapes directly.

// RunConfigPayload describes the run to a newly connected client.
type RunConfigPayload struct {
	Houses      int     `json:"houses"`
	Days        int     `json:"days"`
	Scenario    string  `json:"scenario"`
	SmartPolicy string  `json:"smart_policy"`
	Profile     string  `json:"profile"`
	PricePerKWh float64 `json:"price_per_kwh"`
	Seed        int64   `json:"seed"`
}

// SampleHistoryPayload carries the recorded trajectory so far.
type SampleHistoryPayload struct {
	Samples []model.Sample `json:"samples"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}
