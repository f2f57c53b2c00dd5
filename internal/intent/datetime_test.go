package intent

import (
	"testing"
	"time"
)

func TestRoundToSlot(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, time.January, 9, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"on the hour", at(14, 0), at(14, 0)},
		{"on the half hour", at(14, 30), at(14, 30)},
		{"under fifteen rounds down", at(14, 10), at(14, 0)},
		{"fourteen rounds down", at(14, 44), at(14, 30)},
		{"exactly fifteen rounds up", at(14, 15), at(14, 30)},
		{"over fifteen rounds up", at(14, 29), at(14, 30)},
		{"rolls into next hour", at(14, 45), at(15, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundToSlot(tt.in); !got.Equal(tt.want) {
				t.Errorf("RoundToSlot(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundToSlotClearsSeconds(t *testing.T) {
	in := time.Date(2026, time.January, 9, 14, 0, 42, 500, time.UTC)
	got := RoundToSlot(in)
	if got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("seconds not cleared: %v", got)
	}
}

func TestDateParser(t *testing.T) {
	p := NewDateParser()
	base := time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC) // Wednesday morning

	t.Run("weekday with time", func(t *testing.T) {
		got, ok := p.Parse("this friday at 2pm", base)
		if !ok {
			t.Fatal("expected a parse")
		}
		if got.Weekday() != time.Friday {
			t.Errorf("weekday = %v, want Friday", got.Weekday())
		}
		if got.Hour() != 14 || got.Minute() != 0 {
			t.Errorf("time = %02d:%02d, want 14:00", got.Hour(), got.Minute())
		}
		if got.Before(base) {
			t.Errorf("resolved to the past: %v", got)
		}
	})

	t.Run("tomorrow", func(t *testing.T) {
		got, ok := p.Parse("tomorrow at 10am", base)
		if !ok {
			t.Fatal("expected a parse")
		}
		if got.Day() != 8 || got.Hour() != 10 {
			t.Errorf("got %v, want January 8 at 10:00", got)
		}
	})

	t.Run("bare time earlier today resolves forward", func(t *testing.T) {
		got, ok := p.Parse("how about 9am", base)
		if !ok {
			t.Fatal("expected a parse")
		}
		if got.Before(base) {
			t.Errorf("resolved to the past: %v", got)
		}
		if got.Hour() != 9 {
			t.Errorf("hour = %d, want 9", got.Hour())
		}
	})

	t.Run("no date", func(t *testing.T) {
		if _, ok := p.Parse("just browsing your services", base); ok {
			t.Error("expected no parse for dateless text")
		}
	})
}
