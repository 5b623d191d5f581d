package ws

import (
	"log/slog"

	"housesim/internal/history"
	"housesim/internal/model"
	"housesim/internal/simulator"
)

// Bridge implements simulator.Callback, recording samples and broadcasting
// every event to the WebSocket hub.
type Bridge struct {
	hub *Hub
	rec *history.Recorder
	log *slog.Logger
}

// NewBridge creates a bridge. rec may be nil when no history is kept.
func NewBridge(hub *Hub, rec *history.Recorder, log *slog.Logger) *Bridge {
	return &Bridge{hub: hub, rec: rec, log: log}
}

func (b *Bridge) OnState(s simulator.State) {
	b.broadcast(TypeSimState, s)
}

func (b *Bridge) OnSample(s model.Sample) {
	if b.rec != nil {
		b.rec.Record(s)
	}
	b.broadcast(TypeSimSample, s)
}

func (b *Bridge) OnSummary(s simulator.Summary) {
	b.broadcast(TypeSummaryUpdate, s)
}

func (b *Bridge) broadcast(msgType string, payload any) {
	msg, err := NewEnvelope(msgType, payload)
	if err != nil {
		b.log.Error("marshaling event", "type", msgType, "err", err)
		return
	}
	b.hub.Broadcast(msg)
}
