package main

import (
	"context"
	"log"

	"gym-retention-be/internal/bootstrap"
	"gym-retention-be/internal/config"
	"gym-retention-be/internal/server"
	"gym-retention-be/internal/tracer"
	"gym-retention-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Alert Consumer Service...")
		if err := container.AlertConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Alert Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
