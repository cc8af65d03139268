package registry

import "sort"

// topRoutes caps PopularRoutes and ProfitableRoutes output.
const topRoutes = 3

// RouteCount is one entry of the most-popular-routes ranking.
type RouteCount struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}

// RouteProfit is one entry of the most-profitable-routes ranking.
type RouteProfit struct {
	Route string `json:"route"`
	Total int    `json:"total"`
}

// PopularRoutes groups sold tickets by the route of their referenced
// train and returns the top three routes by sale count, descending.
// Ties keep first-encountered order. Records whose train no longer
// resolves are skipped.
func (s *SoldTickets) PopularRoutes() []RouteCount {
	var order []string
	counts := make(map[string]int)

	for _, rec := range s.t.recs {
		train, ok := s.trains.t.find(rec.TrainID)
		if !ok {
			continue
		}
		if _, seen := counts[train.Route]; !seen {
			order = append(order, train.Route)
		}
		counts[train.Route]++
	}

	out := make([]RouteCount, 0, len(order))
	for _, route := range order {
		out = append(out, RouteCount{Route: route, Count: counts[route]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > topRoutes {
		out = out[:topRoutes]
	}
	return out
}

// ProfitableRoutes groups sold tickets by the route of their referenced
// train, sums the referenced ticket prices, and returns the top three
// routes by revenue, descending. Records whose train or ticket no longer
// resolves are skipped.
func (s *SoldTickets) ProfitableRoutes() []RouteProfit {
	var order []string
	totals := make(map[string]int)

	for _, rec := range s.t.recs {
		train, ok := s.trains.t.find(rec.TrainID)
		if !ok {
			continue
		}
		ticket, ok := s.tickets.t.find(rec.TicketID)
		if !ok {
			continue
		}
		if _, seen := totals[train.Route]; !seen {
			order = append(order, train.Route)
		}
		totals[train.Route] += ticket.Price
	}

	out := make([]RouteProfit, 0, len(order))
	for _, route := range order {
		out = append(out, RouteProfit{Route: route, Total: totals[route]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })

	if len(out) > topRoutes {
		out = out[:topRoutes]
	}
	return out
}

// EmptyRoutes returns the distinct train routes with no sales, in train
// insertion order.
func (s *SoldTickets) EmptyRoutes() []string {
	sold := make(map[string]bool)
	for _, rec := range s.t.recs {
		if train, ok := s.trains.t.find(rec.TrainID); ok {
			sold[train.Route] = true
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, train := range s.trains.t.recs {
		if sold[train.Route] || seen[train.Route] {
			continue
		}
		seen[train.Route] = true
		out = append(out, train.Route)
	}
	return out
}
