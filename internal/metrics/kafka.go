// Package metrics publishes per-tick simulation samples to Kafka for
// external time-series collectors. The core engine only sees the Callback
// interface; this sink is optional glue enabled by the server.
package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"housesim/internal/model"
	"housesim/internal/simulator"
)

// Publisher writes samples and summaries to a Kafka topic. It implements
// simulator.Callback so it can be fanned in next to the WebSocket bridge.
type Publisher struct {
	writer *kafka.Writer
	log    *slog.Logger
}

func NewPublisher(brokers []string, topic string, log *slog.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
		log: log,
	}
}

// record is the wire format of one published event.
type record struct {
	Kind      string `json:"kind"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

func (p *Publisher) publish(kind string, key string, payload any) {
	b, err := json.Marshal(record{
		Kind:      kind,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	})
	if err != nil {
		p.log.Error("marshal failed", "kind", kind, "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: b}); err != nil {
		p.log.Error("kafka write failed", "kind", kind, "err", err)
	}
}

func (p *Publisher) OnState(s simulator.State) {
	// State transitions are chatty during playback; only terminal states
	// are worth an event downstream.
	if !s.Finished {
		return
	}
	p.publish("state", "state", s)
}

func (p *Publisher) OnSample(s model.Sample) {
	p.publish("sample", fmt.Sprintf("day-%d", s.Day), s)
}

func (p *Publisher) OnSummary(s simulator.Summary) {
	p.publish("summary", "summary", s)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
