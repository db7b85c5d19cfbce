package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/blendbase/backend/config"
	"github.com/blendbase/backend/internal/database"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "directory containing .sql migration files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, *migrationsDir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations applied")
}
