package registry

import (
	"regexp"
	"strconv"
	"strings"
)

var datePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// SoldTickets is the repository of sold-ticket records. Unlike the other
// stores it enforces referential integrity: every write checks that the
// passenger, train and ticket foreign keys resolve, and load-time
// reconciliation silently drops records whose targets have disappeared.
type SoldTickets struct {
	t          *table[SoldTicket]
	passengers *Passengers
	trains     *Trains
	tickets    *Tickets
}

// All returns every sold ticket in insertion order.
func (s *SoldTickets) All() []SoldTicket {
	return s.t.all()
}

// Add validates the draft, checks the foreign keys, assigns the next id
// and appends the record. On any failure the collection is untouched.
func (s *SoldTickets) Add(passengerID, trainID, ticketID, date string) (SoldTicket, error) {
	if err := s.validate(passengerID, trainID, ticketID, date); err != nil {
		return SoldTicket{}, err
	}
	pID, trID, tkID, err := s.checkForeignKeys(passengerID, trainID, ticketID)
	if err != nil {
		return SoldTicket{}, err
	}

	rec := SoldTicket{ID: s.t.nextID(), PassengerID: pID, TrainID: trID, TicketID: tkID, Date: date}
	s.t.recs = append(s.t.recs, rec)
	if err := s.t.persist(); err != nil {
		return SoldTicket{}, err
	}

	s.t.log.Info("sold ticket added", "id", rec.ID)
	return rec, nil
}

// Edit replaces the record with the given id after the same validation
// and foreign-key checks as Add.
func (s *SoldTickets) Edit(id, passengerID, trainID, ticketID, date string) (SoldTicket, error) {
	n, err := s.t.resolveID(id, msgSoldIDEmpty, msgSoldIDNaN, msgSoldIDMissing)
	if err != nil {
		return SoldTicket{}, err
	}
	if err := s.validate(passengerID, trainID, ticketID, date); err != nil {
		return SoldTicket{}, err
	}
	pID, trID, tkID, err := s.checkForeignKeys(passengerID, trainID, ticketID)
	if err != nil {
		return SoldTicket{}, err
	}

	rec := SoldTicket{ID: n, PassengerID: pID, TrainID: trID, TicketID: tkID, Date: date}
	s.t.replace(n, rec)
	if err := s.t.persist(); err != nil {
		return SoldTicket{}, err
	}

	s.t.log.Info("sold ticket edited", "id", n)
	return rec, nil
}

// Remove deletes the record with the given id.
func (s *SoldTickets) Remove(id string) error {
	n, err := s.t.resolveID(id, msgSoldIDEmpty, msgSoldIDNaN, msgSoldIDMissing)
	if err != nil {
		return err
	}

	s.t.delete(n)
	if err := s.t.persist(); err != nil {
		return err
	}

	s.t.log.Info("sold ticket removed", "id", n)
	return nil
}

// Search returns the sold tickets approximately matching query, plus the
// user-facing status line. The query is matched against the record's own
// fields and the fields of the referenced passenger, train and ticket;
// references that fail to resolve contribute nothing.
func (s *SoldTickets) Search(query string) ([]SoldTicket, string) {
	q := strings.ToLower(query)
	if q == "" {
		return s.t.all(), MsgSearchCancelled
	}

	var found []SoldTicket
	for _, rec := range s.t.recs {
		if s.matches(rec, q) {
			found = append(found, rec)
		}
	}
	return found, msgFound(len(found))
}

func (s *SoldTickets) matches(rec SoldTicket, q string) bool {
	if fuzzy(strconv.Itoa(rec.ID), q) || fuzzy(strings.ToLower(rec.Date), q) {
		return true
	}
	if p, ok := s.passengers.t.find(rec.PassengerID); ok {
		if fuzzy(strconv.Itoa(p.ID), q) ||
			fuzzy(strings.ToLower(p.Name), q) ||
			fuzzy(strconv.Itoa(p.Passport), q) {
			return true
		}
	}
	if tr, ok := s.trains.t.find(rec.TrainID); ok {
		if fuzzy(strconv.Itoa(tr.ID), q) ||
			fuzzy(strings.ToLower(tr.Name), q) ||
			fuzzy(strings.ToLower(tr.Route), q) ||
			fuzzy(strconv.Itoa(tr.Number), q) {
			return true
		}
	}
	if tk, ok := s.tickets.t.find(rec.TicketID); ok {
		if fuzzy(strconv.Itoa(tk.ID), q) ||
			fuzzy(strconv.Itoa(tk.Number), q) ||
			fuzzy(strconv.Itoa(tk.Price), q) {
			return true
		}
	}
	return false
}

// validate runs the draft checks in the original's fixed order: each
// field present, then the date pattern.
func (s *SoldTickets) validate(passengerID, trainID, ticketID, date string) error {
	if passengerID == "" {
		return failed(ErrMissingField, msgSoldPassengerEmpty)
	}
	if trainID == "" {
		return failed(ErrMissingField, msgSoldTrainEmpty)
	}
	if ticketID == "" {
		return failed(ErrMissingField, msgSoldTicketEmpty)
	}
	if date == "" {
		return failed(ErrMissingField, msgSoldDateEmpty)
	}
	if !datePattern.MatchString(date) {
		return failed(ErrInvalidFormat, msgSoldDateFormat)
	}
	return nil
}

// checkForeignKeys resolves each foreign key against its store, in the
// fixed order passenger, train, ticket; the first miss short-circuits.
// A non-numeric id cannot reference anything and reports the same
// "does not exist" message the UI has always shown for it.
func (s *SoldTickets) checkForeignKeys(passengerID, trainID, ticketID string) (int, int, int, error) {
	pID, err := strconv.Atoi(passengerID)
	if err != nil || !s.passengers.t.has(pID) {
		return 0, 0, 0, failed(ErrDanglingReference, msgPassengerMissing(passengerID))
	}
	trID, err := strconv.Atoi(trainID)
	if err != nil || !s.trains.t.has(trID) {
		return 0, 0, 0, failed(ErrDanglingReference, msgTrainMissing(trainID))
	}
	tkID, err := strconv.Atoi(ticketID)
	if err != nil || !s.tickets.t.has(tkID) {
		return 0, 0, 0, failed(ErrDanglingReference, msgTicketMissing(ticketID))
	}
	return pID, trID, tkID, nil
}

// reconcile filters out records whose passenger, train or ticket no
// longer exists — referenced rows can disappear between sessions. The
// filter preserves order and runs before the first persist, so a
// dropped orphan is never written back. Orphans are repaired silently
// rather than surfaced as errors.
func (s *SoldTickets) reconcile() (dropped int) {
	kept := s.t.recs[:0]
	for _, rec := range s.t.recs {
		if s.passengers.t.has(rec.PassengerID) &&
			s.trains.t.has(rec.TrainID) &&
			s.tickets.t.has(rec.TicketID) {
			kept = append(kept, rec)
		} else {
			dropped++
		}
	}
	s.t.recs = kept
	return dropped
}
