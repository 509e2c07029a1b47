package main

import (
	"log"
)

var Version = "dev"
var BuildDate = "dev"

func main() {
	cfg := ConfigFromEnv()
	srv := NewServer(cfg)

	log.Printf("INFO: Starting hello-green %s on %s", Version, cfg.Addr())
	log.Printf("DEBUG: Server routes configured - Endpoints available:")
	log.Printf("  - GET  /")
	log.Printf("  - GET  /health")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("FATAL: Server failed on %s: %v", cfg.Addr(), err)
	}
}
