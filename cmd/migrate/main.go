// Command migrate applies the database schema for the Quill API.
package main

import (
	"log"

	"quill/internal/config"
	"quill/internal/database"

	"gorm.io/driver/postgres"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open without the non-production auto-migration so the schema is only
	// applied once, explicitly, below.
	db, err := database.Open(postgres.Open(database.PostgresDSN(cfg)), true)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema applied")
}
