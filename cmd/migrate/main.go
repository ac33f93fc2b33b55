package main

import (
	"context"
	"log"

	"github.com/fitgenius/backend/config"
	"github.com/fitgenius/backend/internal/database"
	"github.com/fitgenius/backend/internal/store"
)

// migrate creates or updates the tables of the configured SQL store
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StoreDriver == config.StoreMemory {
		log.Fatal("STORE_DRIVER is memory; nothing to migrate")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := store.NewGormStore(db).Migrate(context.Background()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Migrated %s store", cfg.StoreDriver)
}
