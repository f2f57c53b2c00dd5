package intent

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// slotGranularity matches the studio's 30-minute slot grid.
const slotGranularity = 30 * time.Minute

// DateParser resolves natural-language dates ("this friday at 2pm",
// "tomorrow morning") against an explicit base time.
type DateParser struct {
	parser *when.Parser
}

// NewDateParser builds a parser with the English and common rule sets.
func NewDateParser() *DateParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateParser{parser: w}
}

// Parse extracts a date/time from text relative to base. Interpretation is
// forward-looking: a phrase that resolves to the past is pushed to the next
// plausible future occurrence. The result snaps to the nearest 30-minute
// boundary, with exactly 15 minutes rounding up.
func (p *DateParser) Parse(text string, base time.Time) (time.Time, bool) {
	result, err := p.parser.Parse(text, base)
	if err != nil || result == nil {
		return time.Time{}, false
	}

	t := result.Time
	if t.Before(base) {
		// "2pm" after 2pm means tomorrow; a weekday already behind us means
		// next week.
		if next := t.AddDate(0, 0, 1); !next.Before(base) {
			t = next
		} else if next := t.AddDate(0, 0, 7); !next.Before(base) {
			t = next
		}
	}

	return RoundToSlot(t), true
}

// RoundToSlot snaps t to the nearest slot boundary. Remainders under 15
// minutes round down, 15 and over round up. Seconds are always cleared.
func RoundToSlot(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	remainder := time.Duration(t.Minute()) * time.Minute % slotGranularity
	if remainder == 0 {
		return t
	}
	if remainder < slotGranularity/2 {
		return t.Add(-remainder)
	}
	return t.Add(slotGranularity - remainder)
}
