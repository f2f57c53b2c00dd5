package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/sashakstudio/booking-assistant/internal/catalog"
	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

// bookingWindowDays is how far ahead availability is computed (three weeks).
const bookingWindowDays = 21

// ReservationRequest is a proposed booking derived from conversation.
type ReservationRequest struct {
	ClientName string
	Email      string
	Phone      string
	ServiceID  string
	StartsAt   time.Time
	Notes      string
}

// AvailableSlot is an open slot formatted for display plus its machine-readable start.
type AvailableSlot struct {
	Formatted string `json:"formatted"`
	StartsAt  string `json:"startsAt"`
}

// Reservations validates proposed bookings against business hours and the
// store, and commits the ones that pass.
type Reservations struct {
	catalog *catalog.Catalog
	store   Store
	gen     *Generator
	logger  *logging.Logger
}

// NewReservations wires the reservation service.
func NewReservations(cat *catalog.Catalog, store Store, gen *Generator, logger *logging.Logger) *Reservations {
	if logger == nil {
		logger = logging.Default()
	}
	return &Reservations{catalog: cat, store: store, gen: gen, logger: logger}
}

// Reserve validates the request and commits the booking. Validation
// short-circuits on the first failure: unknown service, before opening,
// after closing, then slot conflict. The conflict check and the append are
// one atomic store operation, so concurrent requests for the same slot
// cannot both succeed.
func (r *Reservations) Reserve(req ReservationRequest) (*Booking, error) {
	svc, ok := r.catalog.Find(req.ServiceID)
	if !ok {
		return nil, ErrServiceNotFound
	}

	endsAt := req.StartsAt.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	if req.StartsAt.Before(r.gen.OpenAt(req.StartsAt)) {
		return nil, ErrBeforeOpening
	}
	if endsAt.After(r.gen.CloseAt(req.StartsAt)) {
		return nil, ErrAfterClosing
	}

	booking := Booking{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Email:      req.Email,
		Phone:      req.Phone,
		ServiceID:  svc.ID,
		StartsAt:   req.StartsAt,
		EndsAt:     endsAt,
		Notes:      req.Notes,
	}

	if err := r.store.Insert(booking); err != nil {
		return nil, err
	}

	r.logger.Info("booking confirmed",
		"booking_id", booking.ID,
		"service_id", booking.ServiceID,
		"starts_at", booking.StartsAt,
	)
	return &booking, nil
}

// List returns all confirmed bookings.
func (r *Reservations) List() []Booking {
	return r.store.List()
}

// NextAvailable returns up to count open slots over the booking window,
// formatted for display.
func (r *Reservations) NextAvailable(count int) []AvailableSlot {
	var out []AvailableSlot
	for _, slot := range r.gen.Slots(bookingWindowDays) {
		if r.store.ConflictsWith(slot.Start, slot.End) {
			continue
		}
		out = append(out, AvailableSlot{
			Formatted: slot.Start.Format("Monday, January 2 at 3:04 PM"),
			StartsAt:  slot.Start.Format(time.RFC3339),
		})
		if len(out) == count {
			break
		}
	}
	return out
}
