package registry

import (
	"errors"
	"testing"
)

func TestPassengersAddValidation(t *testing.T) {
	tests := []struct {
		name     string
		pName    string
		passport string
		wantKind error
		wantMsg  string
	}{
		{"missing name", "", "111", ErrMissingField, "Введіть імʼя пасажира"},
		{"missing passport", "Ivan", "", ErrMissingField, "Введіть паспорт пасажира"},
		{"non-numeric passport", "Ivan", "abc", ErrInvalidFormat, "Паспорт повинен містити тільки цифри"},
		{"duplicate passport", "Olha", "111", ErrDuplicateValue, "Паспорт 111 вже існує в базі даних"},
	}

	reg, _ := newTestRegistry(t)
	if _, err := reg.Passengers.Add("Ivan", "111"); err != nil {
		t.Fatalf("seed add: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Passengers.Add(tt.pName, tt.passport)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Add(%q, %q) error = %v, want %v", tt.pName, tt.passport, err, tt.wantKind)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestPassengersEditExcludesSelfFromUniqueness(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Passengers.Add("Ivan", "111"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := reg.Passengers.Add("Olha", "222"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// No-op edit keeping the same passport must succeed.
	rec, err := reg.Passengers.Edit("1", "Ivan Petrovych", "111")
	if err != nil {
		t.Fatalf("edit keeping own passport: %v", err)
	}
	if rec.Name != "Ivan Petrovych" || rec.Passport != 111 {
		t.Errorf("edited record = %+v", rec)
	}

	// Taking another record's passport must still be rejected.
	if _, err := reg.Passengers.Edit("1", "Ivan", "222"); !errors.Is(err, ErrDuplicateValue) {
		t.Errorf("edit stealing passport error = %v, want ErrDuplicateValue", err)
	}
}

func TestPassengersEditUnknownID(t *testing.T) {
	reg, _ := newTestRegistry(t)

	tests := []struct {
		name     string
		id       string
		wantKind error
		wantMsg  string
	}{
		{"empty id", "", ErrMissingField, "Введіть ID пасажира"},
		{"non-numeric id", "abc", ErrInvalidFormat, "ID повинен містити тільки цифри"},
		{"unknown id", "9", ErrNotFound, "Пасажира з ID 9 не існує"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Passengers.Edit(tt.id, "Ivan", "111")
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Edit(%q) error = %v, want %v", tt.id, err, tt.wantKind)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestPassengersRemove(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Passengers.Add("Ivan", "111"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := reg.Passengers.Add("Olha", "222"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := reg.Passengers.Remove("1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := reg.Passengers.Remove("1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove error = %v, want ErrNotFound", err)
	}

	got := reg.Passengers.All()
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("remaining = %+v, want only id 2", got)
	}
}

// Identifiers are count+1, so after a removal a new record reuses a
// previous id. The rule is kept for data compatibility.
func TestPassengersIDReuseAfterRemoval(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Passengers.Add("Ivan", "111"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := reg.Passengers.Add("Olha", "222"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := reg.Passengers.Remove("1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	rec, err := reg.Passengers.Add("Petro", "333")
	if err != nil {
		t.Fatalf("add after removal: %v", err)
	}
	if rec.ID != 2 {
		t.Errorf("reassigned id = %d, want 2 (count+1)", rec.ID)
	}
}

func TestPassengersSearch(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if _, err := reg.Passengers.Add("Ivan", "12345"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := reg.Passengers.Add("Olha", "99999"); err != nil {
		t.Fatalf("add: %v", err)
	}

	found, status := reg.Passengers.Search("IVAN")
	if len(found) != 1 || found[0].Name != "Ivan" {
		t.Fatalf("search by name = %+v, want Ivan", found)
	}
	if status != msgFound(1) {
		t.Errorf("status = %q, want %q", status, msgFound(1))
	}

	// One substitution in five digits stays above the 0.8 threshold.
	found, _ = reg.Passengers.Search("12395")
	if len(found) != 1 || found[0].Passport != 12345 {
		t.Errorf("fuzzy passport search = %+v, want passport 12345", found)
	}

	found, _ = reg.Passengers.Search("77777")
	if len(found) != 0 {
		t.Errorf("search with no match = %+v, want none", found)
	}
}
