package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Package store holds the in-memory starred-restaurant collection. State is
// process-lifetime only; nothing is persisted across restarts.

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("starred record not found")
	// ErrAlreadyStarred is returned when the restaurant already has a record.
	ErrAlreadyStarred = errors.New("restaurant already starred")
)

// Record is a starred restaurant plus a free-text comment. RestaurantID is a
// foreign key into the external catalog, checked only at creation time; the
// reference may dangle later if the catalog entry disappears.
type Record struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	Comment      string `json:"comment"`
}

// Store is the single owner of the record list. Every operation takes the lock
// around its whole check-and-mutate sequence, so concurrent requests cannot
// produce duplicate stars or lost updates.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

// New returns a store pre-populated with the given seed records.
func New(seed ...Record) *Store {
	s := &Store{records: make([]Record, len(seed))}
	copy(s.records, seed)
	return s
}

// List returns all records in insertion order.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

// Create appends a new record for the given restaurant with a fresh id.
// Fails with ErrAlreadyStarred if the restaurant already has a record.
func (s *Store) Create(restaurantID, comment string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.RestaurantID == restaurantID {
			return Record{}, ErrAlreadyStarred
		}
	}
	rec := Record{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Comment:      comment,
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// Delete removes the record with the given id, preserving the order of the
// remaining records.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UpdateComment replaces the comment of the record with the given id in place.
// Identity and position are unchanged.
func (s *Store) UpdateComment(id, comment string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Comment = comment
			return s.records[i], nil
		}
	}
	return Record{}, ErrNotFound
}
