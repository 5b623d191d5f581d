// fetch-prices queries the REN Data Hub for monthly electricity market
// prices and prints them as CSV (month,eur_per_kwh), one row per month of
// the requested year. Months the API cannot serve fall back to the default
// price and are marked as such.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"housesim/internal/pricing"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "year to fetch")
	months := flag.Int("months", 12, "number of months to fetch, starting in January")
	lang := flag.String("lang", "pt-PT", "API culture parameter")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client := pricing.NewClient(log, pricing.WithLanguage(*lang))

	fmt.Println("month,eur_per_kwh,source")
	for m := 1; m <= *months && m <= 12; m++ {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		price, err := client.MonthlyPrice(ctx, *year, time.Month(m))
		cancel()

		source := "ren"
		if err != nil {
			price = pricing.DefaultPricePerKWh
			source = "default"
		}
		fmt.Printf("%d-%02d,%.4f,%s\n", *year, m, price, source)

		time.Sleep(500 * time.Millisecond)
	}
}
