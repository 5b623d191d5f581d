package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"housesim/internal/config"
	"housesim/internal/history"
	"housesim/internal/metrics"
	"housesim/internal/pricing"
	"housesim/internal/simulator"
	"housesim/internal/ws"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	speed := flag.Float64("speed", 24, "playback speed in simulated hours per second")
	autostart := flag.Bool("autostart", false, "start playback immediately")
	resolvePrice := flag.Bool("resolve-price", false, "resolve electricity price from the REN Data Hub before the run")
	kafkaBrokers := flag.String("kafka-brokers", "", "comma-separated Kafka brokers for the metrics sink (disabled when empty)")
	kafkaTopic := flag.String("kafka-topic", "housesim.samples", "Kafka topic for the metrics sink")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Error("loading config", "path", *configPath, "err", err)
			os.Exit(1)
		}
	}

	if *resolvePrice {
		client := pricing.NewClient(log)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		now := time.Now()
		cfg.PricePerKWh = client.Resolve(ctx, now.Year(), now.Month())
		cancel()
		log.Info("electricity price resolved", "eur_per_kwh", cfg.PricePerKWh)
	}

	rec := history.New()
	hub := ws.NewHub(log)
	bridge := ws.NewBridge(hub, rec, log)

	cb := simulator.Callback(bridge)
	if *kafkaBrokers != "" {
		pub := metrics.NewPublisher(strings.Split(*kafkaBrokers, ","), *kafkaTopic, log)
		defer pub.Close()
		cb = simulator.MultiCallback{bridge, pub}
		log.Info("kafka metrics sink enabled", "brokers", *kafkaBrokers, "topic", *kafkaTopic)
	}

	engine, err := simulator.New(cfg, cb)
	if err != nil {
		log.Error("building engine", "err", err)
		os.Exit(1)
	}
	engine.SetSpeed(*speed)

	handler := ws.NewHandler(hub, engine, rec, log)
	mux := newMux(engine, handler, log)

	if *autostart {
		engine.Start()
	}

	log.Info("starting server", "addr", *addr,
		"houses", cfg.Houses, "days", cfg.Days, "scenario", cfg.Scenario)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func newMux(engine *simulator.Engine, wsHandler http.Handler, log *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("GET /api/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(engine.Summary()); err != nil {
			log.Error("encoding summary", "err", err)
		}
	})
	mux.Handle("/ws", wsHandler)
	return mux
}
