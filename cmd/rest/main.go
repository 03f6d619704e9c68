package main

import (
	"context"
	"log"

	"ai-datachat-be/internal/bootstrap"
	"ai-datachat-be/internal/config"
	"ai-datachat-be/internal/server"
	"ai-datachat-be/internal/tracer"
)

func main() {
	// 1. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load configuration
	cfg := config.Load()

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(cfg)

	// 4. Start background audit consumer
	go func() {
		log.Println("Background: Starting Audit Consumer...")
		if err := container.AuditService.Consume(context.Background()); err != nil {
			log.Printf("Background Audit Consumer Error: %v", err)
		}
	}()

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
