package main

import (
	"encoding/json"
	"log"
	"net/http"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	log.Printf("DEBUG: Health check requested from: %s", r.RemoteAddr)

	response := map[string]interface{}{
		"version":    Version,
		"build_date": BuildDate,
		"status":     "healthy",
		"service":    "hello-green",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
