package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/config"
	"github.com/izamghali/fastrac-take-home-test/internal/fastrac"
)

func main() {
	origin := flag.Int64("origin", 0, "origin (warehouse) region id")
	destination := flag.Int64("destination", 0, "destination (user) region id")
	flag.Parse()

	if *origin == 0 || *destination == 0 {
		fmt.Fprintln(os.Stderr, "Usage: quote-tariff -origin <region_id> -destination <region_id>")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := fastrac.NewClient(cfg.Fastrac, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	quote, err := client.QuoteTariff(ctx, fastrac.TariffRequest{
		Origin:         *origin,
		Destination:    *destination,
		PackageProfile: fastrac.DefaultPackageProfile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch tariff: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tariff %d -> %d: %d IDR\n", *origin, *destination, quote.Tariff)
	if quote.Message != "" {
		fmt.Printf("Message: %s\n", quote.Message)
	}
}
