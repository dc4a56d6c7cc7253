package lifeadmin

import (
	"slices"

	"github.com/etnz/lifeadmin/date"
)

// Habit is a recurring practice with a completion history.
//
// Streak is a derived quantity stored redundantly: the toggle path keeps it
// equal to Streak(CompletedDates, today), but direct edits to CompletedDates
// by other means can let it drift. That is long-standing documented behavior,
// preserved on purpose.
type Habit struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Frequency      string      `json:"frequency"`
	Streak         int         `json:"streak"`
	CompletedDates []date.Date `json:"completedDates"`
}

func (h Habit) recordID() string { return h.ID }

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(day date.Date) bool {
	return slices.Contains(h.CompletedDates, day)
}

// Toggle flips the completion mark for today and returns the updated habit.
// Checking today recomputes the streak from the new history; un-checking
// today always resets the stored streak to 0 rather than recomputing from
// the remaining dates. The asymmetry is intentional, do not "fix" it here.
func (h Habit) Toggle(today date.Date) Habit {
	dates := slices.Clone(h.CompletedDates)
	if i := slices.Index(dates, today); i >= 0 {
		h.CompletedDates = slices.Delete(dates, i, i+1)
		h.Streak = 0
		return h
	}
	h.CompletedDates = append(dates, today)
	h.Streak = Streak(h.CompletedDates, today)
	return h
}

// Streak counts consecutive completed calendar days walking backward from
// today: each date must be within one day of the previously accepted one,
// and the walk stops at the first gap of more than a day.
func Streak(completed []date.Date, today date.Date) int {
	sorted := slices.Clone(completed)
	slices.SortFunc(sorted, func(a, b date.Date) int { return b.Sub(a) }) // descending
	streak := 0
	current := today
	for _, d := range sorted {
		if current.Sub(d) > 1 {
			break
		}
		streak++
		current = d
	}
	return streak
}

// HabitPatch is a partial update of a Habit.
type HabitPatch struct {
	Name      *string
	Frequency *string
}

func (h Habit) apply(patch HabitPatch) Habit {
	if patch.Name != nil {
		h.Name = *patch.Name
	}
	if patch.Frequency != nil {
		h.Frequency = *patch.Frequency
	}
	return h
}

// Habits returns a copy of the habits collection in display order.
func (s *Store) Habits() []Habit { return slices.Clone(s.habits) }

// SetHabits replaces the whole habits collection.
func (s *Store) SetHabits(hs []Habit) {
	s.habits = slices.Clone(hs)
	s.persist(KeyHabits, s.habits)
}

// AddHabit appends a new daily habit and returns it.
func (s *Store) AddHabit() Habit {
	h := Habit{ID: s.NextID(), Frequency: "Daily", CompletedDates: []date.Date{}}
	s.SetHabits(append(s.habits, h))
	return h
}

// UpdateHabit merges patch into the habit with the given id.
func (s *Store) UpdateHabit(id string, patch HabitPatch) bool {
	hs, ok := replaceByID(s.habits, id, func(h Habit) Habit { return h.apply(patch) })
	if ok {
		s.SetHabits(hs)
	}
	return ok
}

// ToggleHabit flips today's completion for the habit with the given id.
func (s *Store) ToggleHabit(id string, today date.Date) bool {
	hs, ok := replaceByID(s.habits, id, func(h Habit) Habit { return h.Toggle(today) })
	if ok {
		s.SetHabits(hs)
	}
	return ok
}

// DeleteHabit removes the habit with the given id.
func (s *Store) DeleteHabit(id string) bool {
	hs, ok := removeByID(s.habits, id)
	if ok {
		s.SetHabits(hs)
	}
	return ok
}
