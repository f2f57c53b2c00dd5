package agent

import (
	"context"
	"errors"
	"time"

	"github.com/sashakstudio/booking-assistant/internal/catalog"
	"github.com/sashakstudio/booking-assistant/internal/intent"
	"github.com/sashakstudio/booking-assistant/internal/observability/metrics"
	"github.com/sashakstudio/booking-assistant/internal/schedule"
	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

// availabilityCount is how many open slots an availability reply offers.
const availabilityCount = 5

// Response is the agent's answer to one conversation turn.
type Response struct {
	Reply    string            `json:"reply"`
	Booking  *schedule.Booking `json:"booking,omitempty"`
	Metadata map[string]any    `json:"metadata,omitempty"`
}

// ConfirmationSender emails clients after a booking is committed.
type ConfirmationSender interface {
	SendBookingConfirmation(ctx context.Context, booking schedule.Booking, svc catalog.Service) error
}

// Agent turns a chat transcript into a reply, and books appointments when
// the conversation carries everything a reservation needs.
type Agent struct {
	extractor     intent.Extractor
	reservations  *schedule.Reservations
	catalog       *catalog.Catalog
	confirmations ConfirmationSender
	metrics       *metrics.AgentMetrics
	logger        *logging.Logger
	now           func() time.Time
}

// New wires the agent. confirmations and m may be nil.
func New(
	extractor intent.Extractor,
	reservations *schedule.Reservations,
	cat *catalog.Catalog,
	confirmations ConfirmationSender,
	m *metrics.AgentMetrics,
	logger *logging.Logger,
	now func() time.Time,
) *Agent {
	if logger == nil {
		logger = logging.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Agent{
		extractor:     extractor,
		reservations:  reservations,
		catalog:       cat,
		confirmations: confirmations,
		metrics:       m,
		logger:        logger,
		now:           now,
	}
}

// Respond classifies the latest user message and produces the reply. Every
// path returns a normal response; errors surface as explanatory replies, not
// as failures.
func (a *Agent) Respond(ctx context.Context, messages []intent.Message) Response {
	latest, ok := intent.LatestUserMessage(messages)
	if !ok {
		return Response{Reply: fallbackReply, Metadata: map[string]any{"reason": "empty_conversation"}}
	}

	conversation := intent.UserText(messages)
	ext := a.extractor.Extract(messages, a.now())
	kind := intent.Classify(latest.Content, conversation, ext.Service != nil, ext.Start != nil)
	a.metrics.ObserveRequest(string(kind))

	switch kind {
	case intent.IntentAvailability:
		return Response{Reply: availabilityReply(a.reservations.NextAvailable(availabilityCount))}
	case intent.IntentPricing:
		return Response{Reply: pricingReply(a.catalog.All())}
	case intent.IntentBio:
		return Response{Reply: bioReply}
	case intent.IntentLocation:
		return Response{Reply: locationReply}
	case intent.IntentPolicy:
		return Response{Reply: policyReply}
	case intent.IntentBooking:
		return a.handleBooking(ctx, ext)
	case intent.IntentServices:
		return Response{Reply: servicesReply(a.catalog.All())}
	case intent.IntentThanks:
		return Response{Reply: thanksReply}
	case intent.IntentGreeting:
		return Response{Reply: greetingReply}
	default:
		return Response{Reply: fallbackReply}
	}
}

// handleBooking commits the reservation when all required fields resolved,
// and otherwise asks for exactly what is missing.
func (a *Agent) handleBooking(ctx context.Context, ext intent.Extraction) Response {
	var needs []string
	if ext.Service == nil {
		needs = append(needs, "which service you'd like")
	}
	if ext.Start == nil {
		needs = append(needs, "the date and time that work")
	}
	if ext.Name == "" {
		needs = append(needs, "your name")
	}
	if ext.Email == "" {
		needs = append(needs, "an email for confirmation")
	}
	if len(needs) > 0 {
		a.metrics.ObserveReservation("incomplete")
		return Response{Reply: missingFieldsReply(needs)}
	}

	booking, err := a.reservations.Reserve(schedule.ReservationRequest{
		ClientName: ext.Name,
		Email:      ext.Email,
		Phone:      ext.Phone,
		ServiceID:  ext.Service.ID,
		StartsAt:   *ext.Start,
	})
	if err != nil {
		reply := reservationErrorReply(err)
		if errors.Is(err, schedule.ErrSlotConflict) {
			a.metrics.ObserveReservation("conflict")
			reply += "\n\n" + availabilityReply(a.reservations.NextAvailable(availabilityCount))
		} else {
			a.metrics.ObserveReservation("rejected")
		}
		a.logger.Info("reservation rejected", "error", err, "service_id", ext.Service.ID)
		return Response{Reply: reply}
	}

	a.metrics.ObserveReservation("confirmed")
	if a.confirmations != nil {
		// Best effort; the booking stands even if the email bounces.
		if err := a.confirmations.SendBookingConfirmation(ctx, *booking, *ext.Service); err != nil {
			a.logger.Error("confirmation email failed", "error", err, "booking_id", booking.ID)
		}
	}

	return Response{
		Reply:    successReply(booking, *ext.Service),
		Booking:  booking,
		Metadata: map[string]any{"intent": "booking.confirmed"},
	}
}
