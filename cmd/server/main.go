// Command server runs the reminders HTTP API.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/heartmarshall/reminders-backend/internal/app"
	"github.com/heartmarshall/reminders-backend/internal/config"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply database migrations before serving")
	flag.Parse()

	ctx := context.Background()

	if *migrate {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("server: %v", err)
		}
		n, err := app.Migrate(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("server: %v", err)
		}
		log.Printf("applied %d migrations", n)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
