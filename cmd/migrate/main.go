package main

import (
	"database/sql"
	"flag"
	"log"

	"merchant-payments/internal/config"
	"merchant-payments/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	status := flag.Bool("status", false, "print the current migration version and exit")
	seed := flag.Bool("seed", false, "load seed data after migrating (requires SEED_DATABASE=true)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("Database not ready: %v", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
		log.Printf("Migration version: %d, dirty: %v", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if *seed {
		if err := runner.LoadSeeds(); err != nil {
			log.Fatalf("Seed loading failed: %v", err)
		}
	}
}
