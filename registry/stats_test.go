package registry

import (
	"strconv"
	"testing"
)

func TestPopularAndEmptyRoutes(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Passengers.Add("Ivan", "111"); err != nil {
		t.Fatalf("add passenger: %v", err)
	}
	if _, err := reg.Trains.Add("A", "X", "1"); err != nil {
		t.Fatalf("add train: %v", err)
	}
	if _, err := reg.Trains.Add("B", "Y", "2"); err != nil {
		t.Fatalf("add train: %v", err)
	}
	if _, err := reg.Tickets.Add("7", "100"); err != nil {
		t.Fatalf("add ticket: %v", err)
	}

	for _, date := range []string{"01.01.2024", "02.01.2024", "03.01.2024"} {
		if _, err := reg.Sold.Add("1", "1", "1", date); err != nil {
			t.Fatalf("add sold: %v", err)
		}
	}

	popular := reg.Sold.PopularRoutes()
	if len(popular) != 1 || popular[0].Route != "X" || popular[0].Count != 3 {
		t.Errorf("PopularRoutes() = %+v, want [{X 3}]", popular)
	}

	empty := reg.Sold.EmptyRoutes()
	if len(empty) != 1 || empty[0] != "Y" {
		t.Errorf("EmptyRoutes() = %v, want [Y]", empty)
	}
}

func TestProfitableRoutesOrderingAndCap(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Passengers.Add("Ivan", "111"); err != nil {
		t.Fatalf("add passenger: %v", err)
	}

	routes := []string{"R1", "R2", "R3", "R4"}
	for i, route := range routes {
		if _, err := reg.Trains.Add("T", route, strconv.Itoa(i+1)); err != nil {
			t.Fatalf("add train %s: %v", route, err)
		}
	}
	prices := []string{"10", "40", "30", "20"}
	for i, price := range prices {
		if _, err := reg.Tickets.Add(strconv.Itoa(100+i), price); err != nil {
			t.Fatalf("add ticket: %v", err)
		}
	}

	// One sale per route with distinct prices.
	for i := range routes {
		if _, err := reg.Sold.Add("1", strconv.Itoa(i+1), strconv.Itoa(i+1), "01.01.2024"); err != nil {
			t.Fatalf("add sold: %v", err)
		}
	}

	got := reg.Sold.ProfitableRoutes()
	if len(got) != 3 {
		t.Fatalf("ProfitableRoutes() returned %d entries, want top 3", len(got))
	}
	want := []RouteProfit{{"R2", 40}, {"R3", 30}, {"R4", 20}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPopularRoutesTieKeepsInsertionOrder(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Passengers.Add("Ivan", "111"); err != nil {
		t.Fatalf("add passenger: %v", err)
	}
	if _, err := reg.Trains.Add("A", "X", "1"); err != nil {
		t.Fatalf("add train: %v", err)
	}
	if _, err := reg.Trains.Add("B", "Y", "2"); err != nil {
		t.Fatalf("add train: %v", err)
	}
	if _, err := reg.Tickets.Add("7", "100"); err != nil {
		t.Fatalf("add ticket: %v", err)
	}

	// Y sold first, then X: equal counts keep first-encountered order.
	if _, err := reg.Sold.Add("1", "2", "1", "01.01.2024"); err != nil {
		t.Fatalf("add sold: %v", err)
	}
	if _, err := reg.Sold.Add("1", "1", "1", "02.01.2024"); err != nil {
		t.Fatalf("add sold: %v", err)
	}

	got := reg.Sold.PopularRoutes()
	if len(got) != 2 || got[0].Route != "Y" || got[1].Route != "X" {
		t.Errorf("PopularRoutes() = %+v, want Y before X", got)
	}
}
