// Command reconcile brings the catalog database in line with the baseline
// without starting the HTTP server.
package main

import (
	"log"

	"go-inventory-catalog/internal/config"
	"go-inventory-catalog/internal/seed"
	"go-inventory-catalog/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// 2. Setup Database
	db, err := database.Open(cfg.DatabaseOptions())
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	// 3. Run every phase
	report, err := seed.Run(db, seed.Options{Reconcile: cfg.Reconcile})
	closeErr := database.Close(db)
	if err != nil {
		log.Fatalf("❌ Reconciliation failed: %v", err)
	}
	if closeErr != nil {
		log.Fatalf("❌ Failed to close database: %v", closeErr)
	}

	log.Printf("✅ Done: %d products seeded, %d removed, %d upserted, %d images backfilled",
		report.Seeded, report.Removed, report.Upserted, report.Backfilled)
}
