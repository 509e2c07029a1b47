package main

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
)

// Config holds the listen address for the server.
type Config struct {
	Host string
	Port string
}

// ConfigFromEnv reads the listen address from HOST and PORT
func ConfigFromEnv() Config {
	return Config{
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		Port: getEnvOrDefault("PORT", "5000"),
	}
}

// Addr returns the host:port pair the server will bind
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Server owns the route table and the listening socket.
type Server struct {
	cfg      Config
	router   *mux.Router
	listener net.Listener
}

// NewServer builds a server with its full route table. Routes are registered
// once here and never change for the lifetime of the process.
func NewServer(cfg Config) *Server {
	s := &Server{cfg: cfg}

	r := mux.NewRouter()

	// Log all incoming requests
	r.Use(loggingMiddleware)

	r.HandleFunc("/", handleHello).Methods("GET")
	r.HandleFunc("/health", handleHealth).Methods("GET")

	// Catch-all route for unmatched paths and methods
	r.PathPrefix("/").HandlerFunc(handleCatchAll)

	s.router = r
	return s
}

// Handler exposes the route table so tests can drive it without a socket
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the configured address. A bind failure (port in use, missing
// permission, bad port) is returned to the caller; there is no retry or
// fallback port.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("could not bind %s: %w", s.cfg.Addr(), err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address. Only valid after Listen succeeds; with
// PORT=0 this reports the ephemeral port the OS picked.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.cfg.Addr()
	}
	return s.listener.Addr().String()
}

// Serve accepts connections on the bound listener. It does not return under
// normal operation.
func (s *Server) Serve() error {
	return http.Serve(s.listener, s.router)
}

// ListenAndServe binds the configured address and serves until the process
// is killed.
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}
