package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/blendbase/backend/config"
	"github.com/blendbase/backend/internal/database"
	"github.com/blendbase/backend/internal/server"
	"github.com/blendbase/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	healthDB, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open health-check connection: %v", err)
	}

	opts := server.Options{
		DB:       gormDB,
		HealthDB: healthDB,
		Config:   cfg,
	}

	// Redis is required for write rate limiting but the API can run
	// without it in development.
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, write rate limiting disabled: %v", err)
	} else {
		opts.Redis = redisClient
	}

	if s3Cfg, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
	} else {
		opts.Images = service.NewImageService(s3Cfg)
	}

	srv := server.New(opts)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
