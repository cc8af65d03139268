package registry

import (
	"strconv"
	"strings"
)

// Tickets is the repository of ticket records.
type Tickets struct {
	t *table[Ticket]
}

// All returns every ticket in insertion order.
func (tk *Tickets) All() []Ticket {
	return tk.t.all()
}

// Add validates the draft fields, assigns the next id and appends the
// record.
func (tk *Tickets) Add(number, price string) (Ticket, error) {
	num, pr, err := tk.validate(number, price, 0)
	if err != nil {
		return Ticket{}, err
	}

	rec := Ticket{ID: tk.t.nextID(), Number: num, Price: pr}
	tk.t.recs = append(tk.t.recs, rec)
	if err := tk.t.persist(); err != nil {
		return Ticket{}, err
	}

	tk.t.log.Info("ticket added", "id", rec.ID)
	return rec, nil
}

// Edit replaces the record with the given id. Uniqueness checks exclude
// the record being edited.
func (tk *Tickets) Edit(id, number, price string) (Ticket, error) {
	n, err := tk.t.resolveID(id, msgTicketIDEmpty, msgTicketIDNaN, msgTicketIDMissing)
	if err != nil {
		return Ticket{}, err
	}

	num, pr, err := tk.validate(number, price, n)
	if err != nil {
		return Ticket{}, err
	}

	rec := Ticket{ID: n, Number: num, Price: pr}
	tk.t.replace(n, rec)
	if err := tk.t.persist(); err != nil {
		return Ticket{}, err
	}

	tk.t.log.Info("ticket edited", "id", n)
	return rec, nil
}

// Remove deletes the record with the given id.
func (tk *Tickets) Remove(id string) error {
	n, err := tk.t.resolveID(id, msgTicketIDEmpty, msgTicketIDNaN, msgTicketIDMissing)
	if err != nil {
		return err
	}

	tk.t.delete(n)
	if err := tk.t.persist(); err != nil {
		return err
	}

	tk.t.log.Info("ticket removed", "id", n)
	return nil
}

// Search returns the tickets approximately matching query, plus the
// user-facing status line.
func (tk *Tickets) Search(query string) ([]Ticket, string) {
	q := strings.ToLower(query)
	if q == "" {
		return tk.t.all(), MsgSearchCancelled
	}

	var found []Ticket
	for _, rec := range tk.t.recs {
		if fuzzy(strconv.Itoa(rec.ID), q) ||
			fuzzy(strconv.Itoa(rec.Number), q) ||
			fuzzy(strconv.Itoa(rec.Price), q) {
			found = append(found, rec)
		}
	}
	return found, msgFound(len(found))
}

func (tk *Tickets) validate(number, price string, excludeID int) (int, int, error) {
	if number == "" {
		return 0, 0, failed(ErrMissingField, msgTicketNumberEmpty)
	}
	num, err := strconv.Atoi(number)
	if err != nil {
		return 0, 0, failed(ErrInvalidFormat, msgTicketNumberNaN)
	}
	if price == "" {
		return 0, 0, failed(ErrMissingField, msgTicketPriceEmpty)
	}
	pr, err := strconv.Atoi(price)
	if err != nil {
		return 0, 0, failed(ErrInvalidFormat, msgTicketPriceNaN)
	}
	for _, rec := range tk.t.recs {
		if rec.ID != excludeID && rec.Number == num {
			return 0, 0, failed(ErrDuplicateValue, msgTicketNumberExists(number))
		}
	}
	return num, pr, nil
}
