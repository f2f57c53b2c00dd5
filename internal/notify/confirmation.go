package notify

import (
	"context"
	"fmt"

	"github.com/sashakstudio/booking-assistant/internal/catalog"
	"github.com/sashakstudio/booking-assistant/internal/schedule"
	"github.com/sashakstudio/booking-assistant/pkg/logging"
)

// Confirmations emails clients after a successful reservation. Sends are
// best-effort: a delivery failure never unwinds the booking.
type Confirmations struct {
	email  EmailSender
	logger *logging.Logger
}

// NewConfirmations wires the confirmation sender.
func NewConfirmations(email EmailSender, logger *logging.Logger) *Confirmations {
	if logger == nil {
		logger = logging.Default()
	}
	return &Confirmations{email: email, logger: logger}
}

// SendBookingConfirmation emails the client their appointment details.
func (c *Confirmations) SendBookingConfirmation(ctx context.Context, booking schedule.Booking, svc catalog.Service) error {
	if c.email == nil {
		return nil
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYou're booked for %s on %s, wrapping at %s.\n\nSasha's studio is in SoHo, Manhattan; details and prep notes will follow closer to your date. Reply to this email if anything changes.\n\nSasha K Studio",
		booking.ClientName,
		svc.Name,
		booking.StartsAt.Format("Monday, January 2 at 3:04 PM"),
		booking.EndsAt.Format("3:04 PM"),
	)

	err := c.email.Send(ctx, EmailMessage{
		To:      booking.Email,
		ToName:  booking.ClientName,
		Subject: fmt.Sprintf("You're booked: %s with Sasha K", svc.Name),
		Body:    body,
	})
	if err != nil {
		c.logger.Error("booking confirmation email failed", "error", err, "booking_id", booking.ID)
		return err
	}
	return nil
}
