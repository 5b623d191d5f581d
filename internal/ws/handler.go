package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"housesim/internal/history"
	"housesim/internal/simulator"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler manages WebSocket connections and routes control messages to the
// engine.
type Handler struct {
	hub    *Hub
	engine *simulator.Engine
	rec    *history.Recorder
	log    *slog.Logger
}

func NewHandler(hub *Hub, engine *simulator.Engine, rec *history.Recorder, log *slog.Logger) *Handler {
	return &Handler{hub: hub, engine: engine, rec: rec, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade", "err", err)
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.hub.Register(client)
	go client.writePump()

	// Catch the new client up: run configuration, trajectory so far,
	// current state.
	h.sendRunConfig(client)
	h.sendHistory(client)
	h.sendState(client)

	h.readPump(client)
}

func (h *Handler) sendRunConfig(c *Client) {
	cfg := h.engine.Config()
	h.sendTo(c, TypeRunConfig, RunConfigPayload{
		Houses:      cfg.Houses,
		Days:        cfg.Days,
		Scenario:    string(cfg.Scenario),
		SmartPolicy: string(cfg.SmartPolicy),
		Profile:     cfg.Profile,
		PricePerKWh: cfg.PricePerKWh,
		Seed:        cfg.Seed,
	})
}

func (h *Handler) sendHistory(c *Client) {
	if h.rec == nil || h.rec.Len() == 0 {
		return
	}
	h.sendTo(c, TypeSampleHistory, SampleHistoryPayload{Samples: h.rec.All()})
}

func (h *Handler) sendState(c *Client) {
	h.sendTo(c, TypeSimState, h.engine.State())
}

func (h *Handler) sendTo(c *Client, msgType string, payload any) {
	msg, err := NewEnvelope(msgType, payload)
	if err != nil {
		h.log.Error("marshaling message", "type", msgType, "err", err)
		return
	}
	c.enqueue(msg, h.log)
}

func (h *Handler) readPump(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read", "err", err)
			}
			return
		}
		h.handleMessage(msg)
	}
}

func (h *Handler) handleMessage(msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		h.log.Warn("invalid message", "err", err)
		return
	}

	switch env.Type {
	case TypeSimStart:
		h.engine.Start()

	case TypeSimPause:
		h.engine.Pause()

	case TypeSimReset:
		h.engine.Reset()
		if h.rec != nil {
			h.rec.Reset()
		}

	case TypeSimSetSpeed:
		var p SetSpeedPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			h.log.Warn("invalid set_speed payload", "err", err)
			return
		}
		h.engine.SetSpeed(p.HoursPerSecond)

	default:
		h.log.Warn("unknown message type", "type", env.Type)
	}
}
