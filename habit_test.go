package lifeadmin

import (
	"testing"
	"time"

	"github.com/etnz/lifeadmin/date"
)

func d(y int, m time.Month, day int) date.Date { return date.New(y, m, day) }

func TestStreak(t *testing.T) {
	today := d(2026, time.May, 10)
	tests := []struct {
		name      string
		completed []date.Date
		want      int
	}{
		{"empty history", nil, 0},
		{"today only", []date.Date{today}, 1},
		{"three consecutive days ending today", []date.Date{
			d(2026, time.May, 8), d(2026, time.May, 9), today,
		}, 3},
		{"ended yesterday still counts", []date.Date{
			d(2026, time.May, 8), d(2026, time.May, 9),
		}, 2},
		{"gap breaks the walk", []date.Date{
			d(2026, time.May, 6), d(2026, time.May, 9), today,
		}, 2},
		{"stale history", []date.Date{
			d(2026, time.May, 1), d(2026, time.May, 2),
		}, 0},
		{"unsorted input", []date.Date{
			today, d(2026, time.May, 8), d(2026, time.May, 9),
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.completed, today); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	today := d(2026, time.May, 10)
	h := Habit{ID: "h1", Name: "Stretch", CompletedDates: []date.Date{
		d(2026, time.May, 8), d(2026, time.May, 9),
	}}

	h = h.Toggle(today)
	if !h.CompletedOn(today) {
		t.Fatal("Toggle did not mark today completed")
	}
	if h.Streak != 3 {
		t.Errorf("streak after check = %d, want 3", h.Streak)
	}

	// Un-checking today resets the stored streak to zero even though two
	// earlier days remain. Long-standing behavior, kept as is.
	h = h.Toggle(today)
	if h.CompletedOn(today) {
		t.Fatal("Toggle did not unmark today")
	}
	if h.Streak != 0 {
		t.Errorf("streak after uncheck = %d, want 0", h.Streak)
	}
}

func TestToggleHabitPersists(t *testing.T) {
	mem := NewMemStorage()
	s := NewStore(mem)
	s.Hydrate()
	s.EnableAutosave()
	h := s.AddHabit()

	today := date.Today()
	if !s.ToggleHabit(h.ID, today) {
		t.Fatal("ToggleHabit reported unknown id")
	}
	s2 := NewStore(mem)
	s2.Hydrate()
	hs := s2.Habits()
	if len(hs) != 1 || !hs[0].CompletedOn(today) {
		t.Errorf("toggle did not survive the round trip: %+v", hs)
	}
}
