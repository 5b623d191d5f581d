// simulate runs the household energy simulation for three scenarios
// (normal-weather baseline, heatwave, improved insulation) and prints a
// comparison of totals and costs.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"housesim/internal/config"
	"housesim/internal/model"
	"housesim/internal/simulator"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	days := flag.Int("days", 0, "override simulation length in days")
	seed := flag.Int64("seed", 0, "override random seed")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Loading config: %v", err)
		}
	}
	if *days > 0 {
		cfg.Days = *days
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	fmt.Println("=== Household Energy Consumption Simulation ===")
	fmt.Println()

	fmt.Println("Scenario 1: Normal Weather Conditions (Baseline)")
	baseline := run(cfg)
	printSummary(baseline)
	fmt.Println()

	fmt.Println("Scenario 2: Heatwave Event")
	heatCfg := cfg
	heatCfg.Scenario = model.ScenarioHeatwave
	heatwave := run(heatCfg)
	printSummary(heatwave)
	fmt.Printf("Increase vs baseline: %+.1f%%\n", delta(heatwave, baseline))
	fmt.Println()

	fmt.Println("Scenario 3: Improved Insulation")
	insCfg := cfg
	insCfg.Insulation = 0.8
	insulated := run(insCfg)
	printSummary(insulated)
	fmt.Printf("Change vs baseline: %+.1f%%\n", delta(insulated, baseline))
}

func run(cfg config.Config) simulator.Summary {
	engine, err := simulator.New(cfg, nil)
	if err != nil {
		log.Fatalf("Building engine: %v", err)
	}
	return engine.Run()
}

func delta(s, baseline simulator.Summary) float64 {
	return (s.TotalEnergyKWh - baseline.TotalEnergyKWh) / baseline.TotalEnergyKWh * 100
}

func printSummary(s simulator.Summary) {
	fmt.Printf("Total energy consumed:     %.2f kWh over %d days (%d house(s))\n",
		s.TotalEnergyKWh, s.SimulationDays, s.Houses)
	fmt.Printf("Average daily consumption: %.2f kWh\n", s.AvgDailyKWh)
	fmt.Printf("Total cost:                %.2f EUR\n", s.TotalCostEUR)
	fmt.Printf("Projected monthly cost:    %.2f EUR\n", s.AvgMonthlyCostEUR)

	type entry struct {
		at  model.ApplianceType
		kwh float64
	}
	entries := make([]entry, 0, len(s.ByAppliance))
	for at, kwh := range s.ByAppliance {
		entries = append(entries, entry{at, kwh})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].kwh > entries[j].kwh })

	fmt.Println("Top consumers:")
	for i, e := range entries {
		if i == 3 {
			break
		}
		fmt.Printf("  %-16s %8.2f kWh\n", e.at, e.kwh)
	}
}
