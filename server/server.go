// Package server exposes the ticket registry over HTTP: server-rendered
// pages mirroring the original views plus a JSON API carrying the
// registry's operations and localized status messages.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AnastasiiaStetsiuk/train-office/pkg/logger"
	"github.com/AnastasiiaStetsiuk/train-office/registry"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config holds all settings for a Server instance.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// ShutdownTimeout is the maximum duration to wait for a clean
	// shutdown.
	ShutdownTimeout time.Duration

	// Logger is the structured logger. Falls back to logger.Default()
	// if nil.
	Logger logger.Logger
}

// Option is a functional option for configuring a Server.
type Option func(*Config)

// DefaultConfig returns a Config with production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            4000,
		ShutdownTimeout: 10 * time.Second,
	}
}

// WithPort sets the HTTP listen port.
func WithPort(port int) Option {
	return func(c *Config) { c.Port = port }
}

// WithShutdownTimeout sets the maximum time to wait for graceful
// shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *Config) { c.ShutdownTimeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// Server serves the ticket-office pages and JSON API.
type Server struct {
	reg             *registry.Registry
	log             logger.Logger
	tmpl            *template.Template
	port            int
	shutdownTimeout time.Duration
}

// New creates a Server around the given registry.
func New(reg *registry.Registry, opts ...Option) (*Server, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	if reg == nil {
		return nil, errors.New("server: registry must not be nil")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("server: invalid port %d", cfg.Port)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("server: parsing templates: %w", err)
	}

	return &Server{
		reg:             reg,
		log:             log.With("component", "server"),
		tmpl:            tmpl,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Handler builds the full route tree. Exposed for tests.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// Page routes, one per entity, as in the original office.
	r.Get("/", s.handlePage("index.html"))
	r.Get("/passengers", s.handlePage("passengers.html"))
	r.Get("/tickets", s.handlePage("tickets.html"))
	r.Get("/trains", s.handlePage("trains.html"))
	r.Get("/sold-tickets", s.handlePage("soldTickets.html"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/passengers", s.searchPassengers)
		r.Post("/passengers", s.addPassenger)
		r.Put("/passengers/{id}", s.editPassenger)
		r.Delete("/passengers/{id}", s.removePassenger)

		r.Get("/tickets", s.searchTickets)
		r.Post("/tickets", s.addTicket)
		r.Put("/tickets/{id}", s.editTicket)
		r.Delete("/tickets/{id}", s.removeTicket)

		r.Get("/trains", s.searchTrains)
		r.Post("/trains", s.addTrain)
		r.Put("/trains/{id}", s.editTrain)
		r.Delete("/trains/{id}", s.removeTrain)

		r.Get("/sold-tickets", s.searchSoldTickets)
		r.Post("/sold-tickets", s.addSoldTicket)
		r.Put("/sold-tickets/{id}", s.editSoldTicket)
		r.Delete("/sold-tickets/{id}", s.removeSoldTicket)

		r.Get("/stats/routes", s.routeStats)
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "port", s.port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return <-errCh
}
