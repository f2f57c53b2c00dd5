package schedule

import (
	"sync"
	"time"
)

// Booking is a confirmed reservation. Bookings are append-only: there is no
// cancellation or update path, and they live only for the process lifetime.
type Booking struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	ServiceID  string    `json:"serviceId"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	Notes      string    `json:"notes,omitempty"`
}

// Store holds confirmed bookings.
//
// Insert must check for conflicts and append atomically, so that two
// concurrent reservations for the same interval cannot both succeed.
type Store interface {
	List() []Booking
	ConflictsWith(start, end time.Time) bool
	Insert(b Booking) error
}

// MemoryStore is a mutex-guarded in-memory Store.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings []Booking
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns a defensive copy of all bookings.
func (s *MemoryStore) List() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// ConflictsWith reports whether [start, end) overlaps any stored booking.
// Half-open semantics: a booking ending at 10:00 does not conflict with one
// starting at 10:00.
func (s *MemoryStore) ConflictsWith(start, end time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conflictsLocked(start, end)
}

func (s *MemoryStore) conflictsLocked(start, end time.Time) bool {
	for _, b := range s.bookings {
		if start.Before(b.EndsAt) && b.StartsAt.Before(end) {
			return true
		}
	}
	return false
}

// Insert appends the booking unless its interval conflicts with an existing
// one. The conflict check and the append happen under a single lock.
func (s *MemoryStore) Insert(b Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflictsLocked(b.StartsAt, b.EndsAt) {
		return ErrSlotConflict
	}
	s.bookings = append(s.bookings, b)
	return nil
}
