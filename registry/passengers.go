package registry

import (
	"strconv"
	"strings"
)

// Passengers is the repository of passenger records.
type Passengers struct {
	t *table[Passenger]
}

// All returns every passenger in insertion order.
func (p *Passengers) All() []Passenger {
	return p.t.all()
}

// Add validates the draft fields, assigns the next id and appends the
// record. Field values arrive as raw form strings.
func (p *Passengers) Add(name, passport string) (Passenger, error) {
	num, err := p.validate(name, passport, 0)
	if err != nil {
		return Passenger{}, err
	}

	rec := Passenger{ID: p.t.nextID(), Name: name, Passport: num}
	p.t.recs = append(p.t.recs, rec)
	if err := p.t.persist(); err != nil {
		return Passenger{}, err
	}

	p.t.log.Info("passenger added", "id", rec.ID)
	return rec, nil
}

// Edit replaces the record with the given id. Uniqueness checks exclude
// the record being edited, so a no-op edit succeeds.
func (p *Passengers) Edit(id, name, passport string) (Passenger, error) {
	n, err := p.t.resolveID(id, msgPassengerIDEmpty, msgPassengerIDNaN, msgPassengerIDMissing)
	if err != nil {
		return Passenger{}, err
	}

	num, err := p.validate(name, passport, n)
	if err != nil {
		return Passenger{}, err
	}

	rec := Passenger{ID: n, Name: name, Passport: num}
	p.t.replace(n, rec)
	if err := p.t.persist(); err != nil {
		return Passenger{}, err
	}

	p.t.log.Info("passenger edited", "id", n)
	return rec, nil
}

// Remove deletes the record with the given id. Dependent sold tickets
// are not cascaded; they are purged on the next load.
func (p *Passengers) Remove(id string) error {
	n, err := p.t.resolveID(id, msgPassengerIDEmpty, msgPassengerIDNaN, msgPassengerIDMissing)
	if err != nil {
		return err
	}

	p.t.delete(n)
	if err := p.t.persist(); err != nil {
		return err
	}

	p.t.log.Info("passenger removed", "id", n)
	return nil
}

// Search returns the passengers approximately matching query, plus the
// user-facing status line. An empty query cancels the search and
// restores the full collection.
func (p *Passengers) Search(query string) ([]Passenger, string) {
	q := strings.ToLower(query)
	if q == "" {
		return p.t.all(), MsgSearchCancelled
	}

	var found []Passenger
	for _, rec := range p.t.recs {
		if fuzzy(strconv.Itoa(rec.ID), q) ||
			fuzzy(strings.ToLower(rec.Name), q) ||
			fuzzy(strconv.Itoa(rec.Passport), q) {
			found = append(found, rec)
		}
	}
	return found, msgFound(len(found))
}

// validate runs the draft checks in the original's fixed order: name
// present, passport present, passport numeric, passport unique.
// excludeID skips one record in the uniqueness scan (the record under
// edit); zero excludes nothing.
func (p *Passengers) validate(name, passport string, excludeID int) (int, error) {
	if name == "" {
		return 0, failed(ErrMissingField, msgPassengerNameEmpty)
	}
	if passport == "" {
		return 0, failed(ErrMissingField, msgPassportEmpty)
	}
	num, err := strconv.Atoi(passport)
	if err != nil {
		return 0, failed(ErrInvalidFormat, msgPassportNaN)
	}
	for _, rec := range p.t.recs {
		if rec.ID != excludeID && rec.Passport == num {
			return 0, failed(ErrDuplicateValue, msgPassportExists(passport))
		}
	}
	return num, nil
}
