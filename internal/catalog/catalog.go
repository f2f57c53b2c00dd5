package catalog

import "strings"

// Service is one bookable offering from Sasha's menu.
type Service struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           int      `json:"price"`
	Keywords        []string `json:"keywords"`
}

// Catalog is the immutable set of services defined at startup.
type Catalog struct {
	services []Service
}

// New creates a catalog from the given services, keeping their order.
// Order matters: keyword-score ties resolve to the first-listed service.
func New(services []Service) *Catalog {
	return &Catalog{services: services}
}

// Default returns Sasha's current menu.
func Default() *Catalog {
	return New([]Service{
		{
			ID:              "bridal-glam",
			Name:            "Signature Bridal Glam",
			Description:     "A luxe, camera-ready bridal application with complexion prep, airbrushed finish, and touch-up kit.",
			DurationMinutes: 120,
			Price:           320,
			Keywords:        []string{"bridal", "wedding", "bride"},
		},
		{
			ID:              "event-glam",
			Name:            "Event Glam",
			Description:     "Full-face glam perfect for red carpet, photoshoots, and elevated nights out.",
			DurationMinutes: 90,
			Price:           220,
			Keywords:        []string{"event", "glam", "party", "photoshoot"},
		},
		{
			ID:              "soft-glow",
			Name:            "Soft Glow Makeup",
			Description:     "Effortless complexion focus with luminous skin, soft eyes, and natural lashes.",
			DurationMinutes: 75,
			Price:           180,
			Keywords:        []string{"soft", "natural", "glow", "daytime"},
		},
		{
			ID:              "lesson",
			Name:            "Personal Makeup Lesson",
			Description:     "A 90-minute one-on-one lesson covering techniques, product curation, and a personalized face chart.",
			DurationMinutes: 90,
			Price:           260,
			Keywords:        []string{"lesson", "class", "tutorial", "session"},
		},
	})
}

// All returns the services in catalog order.
func (c *Catalog) All() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Find looks up a service by ID.
func (c *Catalog) Find(id string) (Service, bool) {
	for _, svc := range c.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// Match scores each service by how many of its keywords appear in the
// conversation text and returns the highest scorer. Ties go to the service
// listed first. Returns false when no keyword matched at all.
func (c *Catalog) Match(conversation string) (Service, bool) {
	conversation = strings.ToLower(conversation)

	best := -1
	bestScore := 0
	for i, svc := range c.services {
		score := 0
		for _, keyword := range svc.Keywords {
			if strings.Contains(conversation, strings.ToLower(keyword)) {
				score++
			}
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return Service{}, false
	}
	return c.services[best], true
}
