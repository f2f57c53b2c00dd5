package intent

import "strings"

// Intent is the classified purpose of the latest user message.
type Intent string

const (
	IntentAvailability Intent = "availability"
	IntentPricing      Intent = "pricing"
	IntentBio          Intent = "bio"
	IntentLocation     Intent = "location"
	IntentPolicy       Intent = "policy"
	IntentBooking      Intent = "booking"
	IntentServices     Intent = "services"
	IntentThanks       Intent = "thanks"
	IntentGreeting     Intent = "greeting"
	IntentFallback     Intent = "fallback"
)

// bookingKeywords anywhere in the conversation flip on booking intent.
var bookingKeywords = []string{"book", "schedule", "reserve", "appointment"}

// Classify checks keyword substrings in a fixed priority order. Most checks
// look at the latest message only; booking intent also triggers when the
// wider conversation carries a booking keyword, or when both a service and a
// date were already resolved. This is a single-turn classifier, not a
// dialogue manager.
func Classify(latest string, conversation string, serviceResolved, startResolved bool) Intent {
	latest = strings.ToLower(latest)

	switch {
	case strings.Contains(latest, "availability"):
		return IntentAvailability
	case strings.Contains(latest, "price"):
		return IntentPricing
	case strings.Contains(latest, "bio"):
		return IntentBio
	case strings.Contains(latest, "where"), strings.Contains(latest, "studio"), strings.Contains(latest, "location"):
		return IntentLocation
	case strings.Contains(latest, "policy"):
		return IntentPolicy
	}

	for _, keyword := range bookingKeywords {
		if strings.Contains(conversation, keyword) {
			return IntentBooking
		}
	}
	if serviceResolved && startResolved {
		return IntentBooking
	}

	switch {
	case strings.Contains(latest, "services"):
		return IntentServices
	case strings.Contains(latest, "thanks"), strings.Contains(latest, "thank you"):
		return IntentThanks
	case strings.Contains(latest, "hello"), strings.Contains(latest, "hi"):
		return IntentGreeting
	}

	return IntentFallback
}
