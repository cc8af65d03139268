package db

import (
	"bytes"
	"errors"
	"testing"
)

func TestMockStoreRoundTrip(t *testing.T) {
	store := NewMockStore()
	defer store.Close()

	if _, err := store.Get("passengers"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("get absent table error = %v, want ErrKeyNotFound", err)
	}

	blob := []byte(`[{"id":1}]`)
	if err := store.Put("passengers", blob); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get("passengers")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("get = %q, want %q", got, blob)
	}

	ok, err := store.Has("passengers")
	if err != nil || !ok {
		t.Errorf("Has = %v, %v, want true, nil", ok, err)
	}

	// Put replaces wholesale.
	if err := store.Put("passengers", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.Get("passengers")
	if err != nil || !bytes.Equal(got, []byte(`[]`)) {
		t.Errorf("after overwrite got %q, %v", got, err)
	}
}

func TestMockStoreDelete(t *testing.T) {
	store := NewMockStore()
	defer store.Close()

	if err := store.Put("trains", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Delete("trains"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get("trains"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("get after delete error = %v, want ErrKeyNotFound", err)
	}

	// Deleting an absent table is not an error.
	if err := store.Delete("trains"); err != nil {
		t.Errorf("delete absent table: %v", err)
	}
}

func TestMockStoreIsolatesCallerSlices(t *testing.T) {
	store := NewMockStore()
	defer store.Close()

	blob := []byte("abc")
	if err := store.Put("t", blob); err != nil {
		t.Fatalf("put: %v", err)
	}
	blob[0] = 'x'

	got, err := store.Get("t")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0] != 'a' {
		t.Errorf("stored value aliased the caller's slice: %q", got)
	}

	got[0] = 'y'
	again, _ := store.Get("t")
	if again[0] != 'a' {
		t.Errorf("returned value aliased the stored slice: %q", again)
	}
}

func TestMockStoreClosed(t *testing.T) {
	store := NewMockStore()
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := store.Get("t"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after close error = %v, want ErrClosed", err)
	}
	if err := store.Put("t", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Put after close error = %v, want ErrClosed", err)
	}
	if err := store.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("double close error = %v, want ErrClosed", err)
	}
	if got := store.Len(); got != -1 {
		t.Errorf("Len after close = %d, want -1", got)
	}
}

func TestMockStoreEmptyTableName(t *testing.T) {
	store := NewMockStore()
	defer store.Close()

	if _, err := store.Get(""); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("Get empty name error = %v, want ErrEmptyTable", err)
	}
	if err := store.Put("", nil); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("Put empty name error = %v, want ErrEmptyTable", err)
	}
}
