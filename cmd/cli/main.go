package main

import (
	"context"
	"log"
	"os"

	"uni-assistant-be/internal/bootstrap"
	"uni-assistant-be/internal/config"
	"uni-assistant-be/internal/pkg/logger"
	"uni-assistant-be/internal/repl"
	"uni-assistant-be/pkg/vectorindex"
)

func main() {
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	// The REPL prompt should appear immediately; the first question pays the
	// index load cost. The lazy wrapper guarantees a single load even here.
	idx := vectorindex.NewLazy(func() (vectorindex.Index, error) {
		log.Println("⚙️ Loading vector index...")
		return bootstrap.OpenIndex(cfg)
	})

	pipeline, err := bootstrap.NewPipeline(cfg, idx, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Unable to initialize pipeline: %v", err)
	}

	loop := repl.New(os.Stdin, os.Stdout, pipeline)
	if err := loop.Run(context.Background()); err != nil {
		log.Fatalf("[FATAL] REPL error: %v", err)
	}
}
