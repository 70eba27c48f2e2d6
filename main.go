package main

import (
	"log"

	"bookflow/adapters/bookingapi"
	"bookflow/adapters/excel"
	"bookflow/adapters/postgres"
	"bookflow/app"
	"bookflow/internal/config"
	"bookflow/ports"
	"bookflow/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if present (development convenience)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loader := excel.NewLoader()
	submitter := bookingapi.NewClient(cfg.Booking, cfg.Template.Version)

	var store ports.ReportStore = postgres.NoopStore{}
	if cfg.Database.URL != "" {
		pgStore, err := postgres.NewReportStore(cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect report store: %v", err)
		}
		defer pgStore.Close()
		store = pgStore
		log.Println("Report persistence enabled")
	} else {
		log.Println("DATABASE_URL not set, batch reports will not be persisted")
	}

	service := app.NewBatchService(loader, submitter, store)
	server := ui.NewServer(service, cfg)

	if err := server.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
