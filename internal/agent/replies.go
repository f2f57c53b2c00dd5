package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sashakstudio/booking-assistant/internal/catalog"
	"github.com/sashakstudio/booking-assistant/internal/schedule"
)

// Assistant copy. These strings are the product voice; change them with the
// same care as an API contract, the widget tests assert on fragments.

const fallbackReply = "I'm Sasha K's beauty booking assistant. I can help with availability, pricing, and locking in sessions. Let me know what you'd like to do!"

const greetingReply = "Hi! I'm Sasha K's booking assistant. I can guide you through services, pricing, and availability, and I can book you in when you're ready."

const thanksReply = "You're so welcome! Let me know if you need anything else."

const bioReply = "Sasha K is a NYC-based makeup artist specializing in modern, luminous glam for red carpet, brides, and editorial. With over 8 years of experience, Sasha's kit is cruelty-free and curated with luxury and clean beauty staples."

const locationReply = "Sasha works from her private studio in SoHo, Manhattan, and travels within the tri-state area for on-location bookings. Travel fees apply outside Manhattan."

const policyReply = "Bookings require a 25% retainer (applied to your total) and 48 hours' notice for reschedules. Travel, assistants, or early-call fees are quoted case-by-case."

func describeServices(services []catalog.Service) string {
	lines := make([]string, 0, len(services))
	for _, svc := range services {
		lines = append(lines, fmt.Sprintf("- %s: $%d | %d mins | %s", svc.Name, svc.Price, svc.DurationMinutes, svc.Description))
	}
	return strings.Join(lines, "\n")
}

func pricingReply(services []catalog.Service) string {
	return fmt.Sprintf("Here's Sasha's current menu:\n%s\n\nLet me know what you'd like to book or if you need a custom quote.", describeServices(services))
}

func servicesReply(services []catalog.Service) string {
	return fmt.Sprintf("Sasha currently offers:\n%s", describeServices(services))
}

func availabilityReply(slots []schedule.AvailableSlot) string {
	if len(slots) == 0 {
		return "I'm fully committed over the next three weeks. Want me to waitlist you or suggest the next opening?"
	}

	bullets := make([]string, 0, len(slots))
	for _, slot := range slots {
		bullets = append(bullets, "- "+slot.Formatted)
	}
	return fmt.Sprintf("Here are the next open studio slots with Sasha:\n%s\nLet me know which one you'd like to claim or if you need a different time.", strings.Join(bullets, "\n"))
}

// missingFieldsReply prompts for exactly the unresolved fields, comma-joined
// with "and" before the last.
func missingFieldsReply(needs []string) string {
	joined := needs[len(needs)-1]
	if len(needs) > 1 {
		joined = strings.Join(needs[:len(needs)-1], ", ") + ", and " + joined
	}
	return fmt.Sprintf("I'd love to schedule that; could you share %s?", joined)
}

func successReply(booking *schedule.Booking, svc catalog.Service) string {
	start := booking.StartsAt.Format("Monday, January 2 at 3:04 PM")
	end := booking.EndsAt.Format("3:04 PM")
	return fmt.Sprintf("Beautiful! I've booked you for %s on %s, wrapping at %s. You'll get a confirmation at %s. Let me know if you need to tweak anything or add notes for Sasha.", svc.Name, start, end, booking.Email)
}

func reservationErrorReply(err error) string {
	switch {
	case errors.Is(err, schedule.ErrServiceNotFound):
		return "Service not found."
	case errors.Is(err, schedule.ErrBeforeOpening):
		return "Sasha starts at 9:00. Please choose a later time."
	case errors.Is(err, schedule.ErrAfterClosing):
		return "This service finishes after 18:00. Pick an earlier slot."
	case errors.Is(err, schedule.ErrSlotConflict):
		return "That slot just booked up. Let me know another time that works for you."
	default:
		return "I couldn't lock that in. Let me know another time that works for you."
	}
}
