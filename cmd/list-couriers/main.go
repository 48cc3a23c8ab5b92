package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/config"
	"github.com/izamghali/fastrac-take-home-test/internal/fastrac"
)

func main() {
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

	couriers, err := client.AllCouriers(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch couriers: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d couriers:\n\n", len(couriers))
	for _, c := range couriers {
		fmt.Printf("%-12s %s\n", c.CourierCode, c.CourierName)
		fmt.Printf("             cod=%t pickup=%t dropoff=%t express=%t instant=%t\n",
			c.COD, c.Pickup, c.Dropoff, c.ExpressDelivery, c.InstantDelivery)
	}
}
