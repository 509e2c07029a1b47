package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// sendJSONError sends a JSON-formatted error response
func sendJSONError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	errorResponse := ErrorResponse{
		Error: ErrorDetails{
			Code:    errorCode,
			Message: message,
		},
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// handleCatchAll handles requests that don't match any other route
func handleCatchAll(w http.ResponseWriter, r *http.Request) {
	sendJSONError(w, http.StatusNotFound, "EndpointNotFound", fmt.Sprintf("Endpoint %s not found", r.URL.Path))
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("DEBUG: Incoming request - Method: %s, URL: %s, RemoteAddr: %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
