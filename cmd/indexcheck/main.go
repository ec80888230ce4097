// indexcheck opens the configured vector index and reports what it finds.
// Run it after (re)building the index to catch configuration errors before
// the server does.
package main

import (
	"fmt"
	"log"

	"uni-assistant-be/internal/config"
	"uni-assistant-be/pkg/vectorindex/flat"
)

func main() {
	cfg := config.Load()

	if cfg.Index.Backend != "flat" {
		log.Printf("Backend is %q; indexcheck only inspects flat snapshots", cfg.Index.Backend)
		return
	}

	idx, err := flat.Open(cfg.Index.Path)
	if err != nil {
		log.Fatalf("❌ Index check failed: %v", err)
	}

	fmt.Printf("✅ Index OK: %d chunks, dimension %d, embedding model %q (path %s)\n",
		idx.Len(), idx.Dimension(), idx.Model(), cfg.Index.Path)
}
