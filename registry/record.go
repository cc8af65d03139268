package registry

// Table names under which each collection is persisted. The names and the
// JSON field layout below are a fixed storage contract: data written by
// earlier versions of the ticket office must keep loading unchanged.
const (
	TablePassengers  = "passengers"
	TableTickets     = "tickets"
	TableTrains      = "trains"
	TableSoldTickets = "soldTickets"
)

// Passenger is one row of the passenger table. Passport numbers are
// unique across the collection.
type Passenger struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Passport int    `json:"passport"`
}

// Ticket is one row of the ticket table. Ticket numbers are unique
// across the collection.
type Ticket struct {
	ID     int `json:"id"`
	Number int `json:"number"`
	Price  int `json:"price"`
}

// Train is one row of the train table. Train numbers are unique across
// the collection.
type Train struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Route  string `json:"route"`
	Number int    `json:"number"`
}

// SoldTicket is one row of the sold-ticket table. It holds foreign keys
// into the passenger, train and ticket tables — never direct references.
type SoldTicket struct {
	ID          int    `json:"id"`
	PassengerID int    `json:"passengerId"`
	TrainID     int    `json:"trainId"`
	TicketID    int    `json:"ticketId"`
	Date        string `json:"date"`
}

// row is the constraint shared by all record types: every record exposes
// its positive integer identifier.
type row interface {
	rowID() int
}

func (p Passenger) rowID() int  { return p.ID }
func (t Ticket) rowID() int     { return t.ID }
func (t Train) rowID() int      { return t.ID }
func (s SoldTicket) rowID() int { return s.ID }
