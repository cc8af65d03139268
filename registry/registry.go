// Package registry implements the ticket-office data layer: four
// validated record collections (passengers, tickets, trains, sold
// tickets) persisted through a key-value store, with cross-table
// referential integrity, approximate search and route statistics.
//
// Every mutating operation validates its draft, applies the change to
// the in-memory collection and persists the whole table. Validation
// failures are *ValidationError values carrying the exact localized
// status message for the UI.
package registry

import (
	"github.com/AnastasiiaStetsiuk/train-office/db"
	"github.com/AnastasiiaStetsiuk/train-office/pkg/logger"
)

// Registry owns the four entity stores. Each collection is owned
// exclusively by its store; sold tickets reference the others by id
// only, and lookups happen on demand.
type Registry struct {
	Passengers *Passengers
	Tickets    *Tickets
	Trains     *Trains
	Sold       *SoldTickets

	log logger.Logger
}

// Config holds the settings for a Registry.
type Config struct {
	// Logger is the structured logger. Falls back to logger.Default()
	// if nil.
	Logger logger.Logger
}

// Option is a functional option for configuring a Registry.
type Option func(*Config)

// WithLogger sets the structured logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// Open loads all four tables from kv and reconciles the sold-ticket
// collection: records whose passenger, train or ticket was deleted out
// of band are dropped and the repaired collection is persisted before
// anything else can overwrite it.
func Open(kv db.Store, opts ...Option) (*Registry, error) {
	cfg := &Config{}
	for _, o := range opts {
		o(cfg)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	log = log.With("component", "registry")

	r := &Registry{log: log}
	r.Passengers = &Passengers{t: newTable[Passenger](TablePassengers, kv, log)}
	r.Tickets = &Tickets{t: newTable[Ticket](TableTickets, kv, log)}
	r.Trains = &Trains{t: newTable[Train](TableTrains, kv, log)}
	r.Sold = &SoldTickets{
		t:          newTable[SoldTicket](TableSoldTickets, kv, log),
		passengers: r.Passengers,
		trains:     r.Trains,
		tickets:    r.Tickets,
	}

	if err := r.Passengers.t.load(); err != nil {
		return nil, err
	}
	if err := r.Tickets.t.load(); err != nil {
		return nil, err
	}
	if err := r.Trains.t.load(); err != nil {
		return nil, err
	}
	if err := r.Sold.t.load(); err != nil {
		return nil, err
	}

	if dropped := r.Sold.reconcile(); dropped > 0 {
		log.Warn("purged sold tickets with dangling references", "dropped", dropped)
		if err := r.Sold.t.persist(); err != nil {
			return nil, err
		}
	}

	log.Info("registry loaded",
		"passengers", len(r.Passengers.t.recs),
		"tickets", len(r.Tickets.t.recs),
		"trains", len(r.Trains.t.recs),
		"sold_tickets", len(r.Sold.t.recs),
	)
	return r, nil
}
