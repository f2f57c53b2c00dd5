package schedule

import "time"

// Slot is a candidate appointment window. Slots are computed on demand and
// never stored.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Generator produces candidate slots for the studio's fixed schedule.
// The clock is injected so slot generation stays a pure function of "now".
type Generator struct {
	OpenHour     int
	CloseHour    int
	Interval     time.Duration
	BusinessDays map[time.Weekday]bool
	Now          func() time.Time
}

// NewGenerator returns a generator for Sasha's studio hours:
// Monday through Saturday, 9:00 to 18:00, 30-minute slots.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		OpenHour:  9,
		CloseHour: 18,
		Interval:  30 * time.Minute,
		BusinessDays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
		Now: now,
	}
}

// IsBusinessDay reports whether the studio is open on t's weekday.
func (g *Generator) IsBusinessDay(t time.Time) bool {
	return g.BusinessDays[t.Weekday()]
}

// OpenAt returns the opening boundary for t's calendar day.
func (g *Generator) OpenAt(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), g.OpenHour, 0, 0, 0, t.Location())
}

// CloseAt returns the closing boundary for t's calendar day.
func (g *Generator) CloseAt(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), g.CloseHour, 0, 0, 0, t.Location())
}

// Slots emits every slot for the next daysAhead+1 calendar days, today
// included. Non-business days contribute nothing. Each slot has the fixed
// interval length and the last slot of a day ends exactly at closing.
func (g *Generator) Slots(daysAhead int) []Slot {
	var slots []Slot

	now := g.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for dayOffset := 0; dayOffset <= daysAhead; dayOffset++ {
		day := startOfToday.AddDate(0, 0, dayOffset)
		if !g.IsBusinessDay(day) {
			continue
		}

		open := g.OpenAt(day)
		closing := g.CloseAt(day)
		for start := open; !start.Add(g.Interval).After(closing); start = start.Add(g.Interval) {
			slots = append(slots, Slot{Start: start, End: start.Add(g.Interval)})
		}
	}

	return slots
}
