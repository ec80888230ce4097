package main

import (
	"context"
	"log"

	"uni-assistant-be/internal/bootstrap"
	"uni-assistant-be/internal/config"
	"uni-assistant-be/internal/server"
	"uni-assistant-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Open the vector index eagerly. Serving without a working index is
	// not a useful degraded mode, so a missing or corrupt index halts startup.
	idx, err := bootstrap.OpenIndex(cfg)
	if err != nil {
		log.Fatalf("[FATAL] Unable to open vector index: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, idx)
	if err != nil {
		log.Fatalf("[FATAL] Unable to bootstrap application: %v", err)
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
