package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-catalog/internal/config"
	"go-inventory-catalog/internal/router"
	"go-inventory-catalog/internal/seed"
	"go-inventory-catalog/internal/ws"
	"go-inventory-catalog/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Setup Database
	db, err := database.Open(cfg.DatabaseOptions())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// 3. Prepare catalog; never serve a half-migrated table
	if _, err := seed.Run(db, seed.Options{Reconcile: cfg.Reconcile}); err != nil {
		log.Fatalf("Catalog initialisation failed: %v", err)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()
	defer wsHub.Stop()

	// 5. Setup Fiber
	app, err := router.New(router.OptionsFromConfig(cfg), db, wsHub)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
