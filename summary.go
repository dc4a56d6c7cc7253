package lifeadmin

import (
	"slices"

	"github.com/etnz/lifeadmin/date"
)

// UpcomingBirthday pairs a relationship with how soon its birthday falls.
type UpcomingBirthday struct {
	Relationship Relationship
	InDays       int
}

// HabitStreak pairs a habit with its streak as of a given day.
type HabitStreak struct {
	Habit  Habit
	Streak int
}

// Summary is the derived dashboard state for one day.
type Summary struct {
	Day               date.Date
	ActiveProjects    int
	OpenTasks         int
	OverdueTasks      []Task
	GoalsInProgress   int
	Finance           FinanceSummary
	TopStreaks        []HabitStreak
	UpcomingBirthdays []UpcomingBirthday
}

// Summarize derives the dashboard for the given day. Birthdays further than
// 30 days out are left off, and at most three habit streaks are reported.
func (s *Store) Summarize(today date.Date) Summary {
	sum := Summary{Day: today}

	for _, p := range s.projects {
		if p.Status != StatusCompleted && p.Status != StatusCancelled {
			sum.ActiveProjects++
		}
	}
	for _, t := range s.tasks {
		if !t.Completed {
			sum.OpenTasks++
		}
		if t.Overdue(today) {
			sum.OverdueTasks = append(sum.OverdueTasks, t)
		}
	}
	for _, g := range s.goals {
		if g.Progress < 100 {
			sum.GoalsInProgress++
		}
	}

	sum.Finance = Summarize(s.finance, DefaultCurrency)

	for _, h := range s.habits {
		if n := Streak(h.CompletedDates, today); n > 0 {
			sum.TopStreaks = append(sum.TopStreaks, HabitStreak{Habit: h, Streak: n})
		}
	}
	slices.SortStableFunc(sum.TopStreaks, func(a, b HabitStreak) int { return b.Streak - a.Streak })
	if len(sum.TopStreaks) > 3 {
		sum.TopStreaks = sum.TopStreaks[:3]
	}

	for _, r := range s.relationships {
		if days, ok := DaysUntilBirthday(r.Birthday, today); ok && days <= 30 {
			sum.UpcomingBirthdays = append(sum.UpcomingBirthdays, UpcomingBirthday{Relationship: r, InDays: days})
		}
	}
	slices.SortStableFunc(sum.UpcomingBirthdays, func(a, b UpcomingBirthday) int { return a.InDays - b.InDays })

	return sum
}
