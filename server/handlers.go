package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnastasiiaStetsiuk/train-office/registry"
)

// response is the JSON envelope of every API reply: the localized status
// line plus the operation's data, if any.
type response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type passengerPayload struct {
	Name     string `json:"name"`
	Passport string `json:"passport"`
}

type ticketPayload struct {
	Number string `json:"number"`
	Price  string `json:"price"`
}

type trainPayload struct {
	Name   string `json:"name"`
	Route  string `json:"route"`
	Number string `json:"number"`
}

type soldTicketPayload struct {
	PassengerID string `json:"passengerId"`
	TrainID     string `json:"trainId"`
	TicketID    string `json:"ticketId"`
	Date        string `json:"date"`
}

// routeStatsPayload bundles the three aggregations for display.
type routeStatsPayload struct {
	Popular    []registry.RouteCount  `json:"popular"`
	Profitable []registry.RouteProfit `json:"profitable"`
	Empty      []string               `json:"empty"`
}

// ---------------------------------------------------------------------------
// Pages
// ---------------------------------------------------------------------------

type pageData struct {
	Passengers []registry.Passenger
	Tickets    []registry.Ticket
	Trains     []registry.Train
	Sold       []registry.SoldTicket
	Stats      routeStatsPayload
}

func (s *Server) handlePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{
			Passengers: s.reg.Passengers.All(),
			Tickets:    s.reg.Tickets.All(),
			Trains:     s.reg.Trains.All(),
			Sold:       s.reg.Sold.All(),
			Stats: routeStatsPayload{
				Popular:    s.reg.Sold.PopularRoutes(),
				Profitable: s.reg.Sold.ProfitableRoutes(),
				Empty:      s.reg.Sold.EmptyRoutes(),
			},
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
			s.log.Error("rendering page failed", "page", name, "error", err)
		}
	}
}

// ---------------------------------------------------------------------------
// Passengers
// ---------------------------------------------------------------------------

func (s *Server) searchPassengers(w http.ResponseWriter, r *http.Request) {
	recs, status := s.reg.Passengers.Search(r.URL.Query().Get("q"))
	s.respond(w, http.StatusOK, response{Message: status, Data: recs})
}

func (s *Server) addPassenger(w http.ResponseWriter, r *http.Request) {
	var p passengerPayload
	if !s.decode(w, r, &p) {
		return
	}
	rec, err := s.reg.Passengers.Add(p.Name, p.Passport)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusCreated, response{Message: registry.MsgPassengerAdded, Data: rec})
}

func (s *Server) editPassenger(w http.ResponseWriter, r *http.Request) {
	var p passengerPayload
	if !s.decode(w, r, &p) {
		return
	}
	rec, err := s.reg.Passengers.Edit(chi.URLParam(r, "id"), p.Name, p.Passport)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, response{Message: registry.MsgPassengerEdited, Data: rec})
}

func (s *Server) removePassenger(w http.ResponseWriter, r *http.Request) {
	if err := s.reg.Passengers.Remove(chi.URLParam(r, "id")); err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, response{Message: registry.MsgPassengerRemoved})
}

// ---------------------------------------------------------------------------
// Tickets
// ---------------------------------------------------------------------------

func (s *Server) searchTickets(w http.ResponseWriter, r *http.Request) {
	recs, status := s.reg.Tickets.Search(r.URL.Query().Get("q"))
	s.respond(w, http.StatusOK, response{Message: status, Data: recs})
}

func (s *Server) addTicket(w http.ResponseWriter, r *http.Request) {
	var p ticketPayload
	if !s.decode(w, r, &p) {
		return
	}
	rec, err := s.reg.Tickets.Add(p.Number, p.Price)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusCreated, response{Message: registry.MsgTicketAdded, Data: rec})
}

func (s *Server) editTicket(w http.ResponseWriter, r *http.Request) {
	var p ticketPayload
	if !s.decode(w, r, &p) {
		return
	}
	rec, err := s.reg.Tickets.Edit(chi.URLParam(r, "id"), p.Number, p.Price)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, response{Message: registry.MsgTicketEdited, Data: rec})
}

func (s *Server) removeTicket(w http.ResponseWriter, r *http.Request) {
	if err := s.reg.Tickets.Remove(chi.URLParam(r, "id")); err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, response{Message: registry.MsgTicketRemoved})
}

// ---------------------------------------------------------------------------
// Trains
// ---------------------------------------------------------------------------

func (s *Server) searchTrains(w http.ResponseWriter, r *http.Request) {
	recs, status := s.reg.Trains.Search(r.URL.Query().Get("q"))
	s.respond(w, http.StatusOK, response{Message: status, Data: recs})
}

func (s *Server) addTrain(w http.ResponseWriter, r *http.Request) {
	var p trainPayload
	if !s.decode(w, r, &p) {
		return
	}
	rec, err := s.reg.Trains.Add(p.Name, p.Route, p.Number)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusCreated, response{Message: registry.MsgTrainAdded, Data: rec})
}

func (s *Server) editTrain(w http.ResponseWriter, r *http.Request) {
	var p trainPayload
	if !s.decode(w, r, &p) {
		return
	}
	rec, err := s.reg.Trains.Edit(chi.URLParam(r, "id"), p.Name, p.Route, p.Number)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, response{Message: registry.MsgTrainEdited, Data: rec})
}

func (s *Server) removeTrain(w http.ResponseWriter, r *http.Request) {
	if err := s.reg.Trains.Remove(chi.URLParam(r, "id")); err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, response{Message: registry.MsgTrainRemoved})
}

// ---------------------------------------------------------------------------
// Sold tickets
// ---------------------------------------------------------------------------

func (s *Server) searchSoldTickets(w http.ResponseWriter, r *http.Request) {
	recs, status := s.reg.Sold.Search(r.URL.Query().Get("q"))
	s.respond(w, http.StatusOK, response{Message: status, Data: recs})
}

func (s *Server) addSoldTicket(w http.ResponseWriter, r *http.Request) {
	var p soldTicketPayload
	if !s.decode(w, r, &p) {
		return
	}
	rec, err := s.reg.Sold.Add(p.PassengerID, p.TrainID, p.TicketID, p.Date)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusCreated, response{Message: registry.MsgSoldAdded, Data: rec})
}

func (s *Server) editSoldTicket(w http.ResponseWriter, r *http.Request) {
	var p soldTicketPayload
	if !s.decode(w, r, &p) {
		return
	}
	rec, err := s.reg.Sold.Edit(chi.URLParam(r, "id"), p.PassengerID, p.TrainID, p.TicketID, p.Date)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, response{Message: registry.MsgSoldEdited, Data: rec})
}

func (s *Server) removeSoldTicket(w http.ResponseWriter, r *http.Request) {
	if err := s.reg.Sold.Remove(chi.URLParam(r, "id")); err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, response{Message: registry.MsgSoldRemoved})
}

// ---------------------------------------------------------------------------
// Statistics
// ---------------------------------------------------------------------------

func (s *Server) routeStats(w http.ResponseWriter, r *http.Request) {
	stats := routeStatsPayload{
		Popular:    s.reg.Sold.PopularRoutes(),
		Profitable: s.reg.Sold.ProfitableRoutes(),
		Empty:      s.reg.Sold.EmptyRoutes(),
	}
	s.respond(w, http.StatusOK, response{Message: "OK", Data: stats})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respond(w, http.StatusBadRequest, response{Message: "invalid request body"})
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, code int, resp response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("encoding response failed", "error", err)
	}
}

// respondErr maps the registry error taxonomy to HTTP status codes and
// passes the localized message through untouched.
func (s *Server) respondErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, registry.ErrMissingField), errors.Is(err, registry.ErrInvalidFormat):
		code = http.StatusBadRequest
	case errors.Is(err, registry.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, registry.ErrDuplicateValue), errors.Is(err, registry.ErrDanglingReference):
		code = http.StatusConflict
	default:
		s.log.Error("operation failed", "error", err)
	}
	s.respond(w, code, response{Message: err.Error()})
}
