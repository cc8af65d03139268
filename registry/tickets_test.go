package registry

import (
	"errors"
	"testing"
)

func TestTicketsAddValidation(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		price    string
		wantKind error
		wantMsg  string
	}{
		{"missing number", "", "100", ErrMissingField, "Введите номер квитка"},
		{"non-numeric number", "abc", "100", ErrInvalidFormat, "Номер квитка має містити тільки цифри"},
		{"missing price", "8", "", ErrMissingField, "Введіть ціну квитка"},
		{"non-numeric price", "8", "abc", ErrInvalidFormat, "Ціна квитка повинна містити тільки цифри"},
		{"duplicate number", "7", "50", ErrDuplicateValue, "Квиток 7 вже існує в базі даних"},
	}

	reg, _ := newTestRegistry(t)
	if _, err := reg.Tickets.Add("7", "100"); err != nil {
		t.Fatalf("seed add: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Tickets.Add(tt.number, tt.price)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Add(%q, %q) error = %v, want %v", tt.number, tt.price, err, tt.wantKind)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestTicketsEditAndRemove(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Tickets.Add("7", "100"); err != nil {
		t.Fatalf("add: %v", err)
	}

	rec, err := reg.Tickets.Edit("1", "7", "250")
	if err != nil {
		t.Fatalf("no-op number edit: %v", err)
	}
	if rec.Price != 250 {
		t.Errorf("price = %d, want 250", rec.Price)
	}

	if _, err := reg.Tickets.Edit("9", "8", "100"); !errors.Is(err, ErrNotFound) {
		t.Errorf("edit unknown id error = %v, want ErrNotFound", err)
	}
	if err := reg.Tickets.Remove("1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := reg.Tickets.All(); len(got) != 0 {
		t.Errorf("tickets left after remove: %+v", got)
	}
}

func TestTrainsAddValidation(t *testing.T) {
	tests := []struct {
		name     string
		trName   string
		route    string
		number   string
		wantKind error
		wantMsg  string
	}{
		{"missing name", "", "Kyiv-Lviv", "5", ErrMissingField, "Введіть назву потягу"},
		{"missing route", "T2", "", "6", ErrMissingField, "Введіть маршрут потягу"},
		{"missing number", "T2", "Kyiv-Odesa", "", ErrMissingField, "Введіть номер потягу"},
		{"non-numeric number", "T2", "Kyiv-Odesa", "abc", ErrInvalidFormat, "Номер потягу повинен містити тільки цифри"},
		{"duplicate number", "T2", "Kyiv-Odesa", "5", ErrDuplicateValue, "Номер 5 вже існує в базі даних"},
	}

	reg, _ := newTestRegistry(t)
	if _, err := reg.Trains.Add("T1", "Kyiv-Lviv", "5"); err != nil {
		t.Fatalf("seed add: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Trains.Add(tt.trName, tt.route, tt.number)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Add error = %v, want %v", err, tt.wantKind)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestTrainsSearchByRoute(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Trains.Add("Intercity", "Kyiv-Lviv", "5"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := reg.Trains.Add("Night Express", "Kyiv-Odesa", "6"); err != nil {
		t.Fatalf("add: %v", err)
	}

	found, _ := reg.Trains.Search("lviv")
	if len(found) != 1 || found[0].Route != "Kyiv-Lviv" {
		t.Errorf("route search = %+v, want Kyiv-Lviv", found)
	}
}
