package registry

import (
	"strconv"
	"strings"
)

// Trains is the repository of train records.
type Trains struct {
	t *table[Train]
}

// All returns every train in insertion order.
func (tr *Trains) All() []Train {
	return tr.t.all()
}

// Add validates the draft fields, assigns the next id and appends the
// record.
func (tr *Trains) Add(name, route, number string) (Train, error) {
	num, err := tr.validate(name, route, number, 0)
	if err != nil {
		return Train{}, err
	}

	rec := Train{ID: tr.t.nextID(), Name: name, Route: route, Number: num}
	tr.t.recs = append(tr.t.recs, rec)
	if err := tr.t.persist(); err != nil {
		return Train{}, err
	}

	tr.t.log.Info("train added", "id", rec.ID)
	return rec, nil
}

// Edit replaces the record with the given id. Uniqueness checks exclude
// the record being edited.
func (tr *Trains) Edit(id, name, route, number string) (Train, error) {
	n, err := tr.t.resolveID(id, msgTrainIDEmpty, msgTrainIDNaN, msgTrainIDMissing)
	if err != nil {
		return Train{}, err
	}

	num, err := tr.validate(name, route, number, n)
	if err != nil {
		return Train{}, err
	}

	rec := Train{ID: n, Name: name, Route: route, Number: num}
	tr.t.replace(n, rec)
	if err := tr.t.persist(); err != nil {
		return Train{}, err
	}

	tr.t.log.Info("train edited", "id", n)
	return rec, nil
}

// Remove deletes the record with the given id. Sold tickets referencing
// the train are not cascaded; they are purged on the next load.
func (tr *Trains) Remove(id string) error {
	n, err := tr.t.resolveID(id, msgTrainIDEmpty, msgTrainIDNaN, msgTrainIDMissing)
	if err != nil {
		return err
	}

	tr.t.delete(n)
	if err := tr.t.persist(); err != nil {
		return err
	}

	tr.t.log.Info("train removed", "id", n)
	return nil
}

// Search returns the trains approximately matching query, plus the
// user-facing status line.
func (tr *Trains) Search(query string) ([]Train, string) {
	q := strings.ToLower(query)
	if q == "" {
		return tr.t.all(), MsgSearchCancelled
	}

	var found []Train
	for _, rec := range tr.t.recs {
		if fuzzy(strconv.Itoa(rec.ID), q) ||
			fuzzy(strings.ToLower(rec.Name), q) ||
			fuzzy(strings.ToLower(rec.Route), q) ||
			fuzzy(strconv.Itoa(rec.Number), q) {
			found = append(found, rec)
		}
	}
	return found, msgFound(len(found))
}

func (tr *Trains) validate(name, route, number string, excludeID int) (int, error) {
	if name == "" {
		return 0, failed(ErrMissingField, msgTrainNameEmpty)
	}
	if route == "" {
		return 0, failed(ErrMissingField, msgTrainRouteEmpty)
	}
	if number == "" {
		return 0, failed(ErrMissingField, msgTrainNumberEmpty)
	}
	num, err := strconv.Atoi(number)
	if err != nil {
		return 0, failed(ErrInvalidFormat, msgTrainNumberNaN)
	}
	for _, rec := range tr.t.recs {
		if rec.ID != excludeID && rec.Number == num {
			return 0, failed(ErrDuplicateValue, msgTrainNumberExists(number))
		}
	}
	return num, nil
}
