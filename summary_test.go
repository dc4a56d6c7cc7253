package lifeadmin

import (
	"testing"
	"time"

	"github.com/etnz/lifeadmin/date"
)

func TestSummarize_Dashboard(t *testing.T) {
	today := d(2026, time.July, 1)
	s := NewStore(NewMemStorage())
	s.Hydrate()

	s.SetProjects([]Project{
		{ID: "p1", Status: StatusInProgress},
		{ID: "p2", Status: StatusCompleted},
		{ID: "p3", Status: StatusPlanning},
	})
	s.SetTasks([]Task{
		{ID: "t1", Title: "open"},
		{ID: "t2", Title: "late", DueDate: d(2026, time.June, 28)},
		{ID: "t3", Title: "done", Completed: true},
	})
	s.SetGoals([]Goal{
		{ID: "g1", Progress: 40},
		{ID: "g2", Progress: 100},
	})
	s.SetFinanceEntries([]FinanceEntry{
		{ID: "f1", Type: Income, Amount: 300},
		{ID: "f2", Type: Expense, Amount: 120},
	})
	s.SetHabits([]Habit{
		{ID: "h1", Name: "run", CompletedDates: []date.Date{d(2026, time.June, 30), today}},
		{ID: "h2", Name: "read", CompletedDates: []date.Date{d(2026, time.June, 1)}},
	})
	s.SetRelationships([]Relationship{
		{ID: "r1", Name: "Sam", Birthday: d(1990, time.July, 10)},
		{ID: "r2", Name: "Ada", Birthday: d(1985, time.December, 25)},
	})

	sum := s.Summarize(today)
	if sum.ActiveProjects != 2 {
		t.Errorf("active projects = %d, want 2", sum.ActiveProjects)
	}
	if sum.OpenTasks != 2 {
		t.Errorf("open tasks = %d, want 2", sum.OpenTasks)
	}
	if len(sum.OverdueTasks) != 1 || sum.OverdueTasks[0].ID != "t2" {
		t.Errorf("overdue tasks = %+v, want just t2", sum.OverdueTasks)
	}
	if sum.GoalsInProgress != 1 {
		t.Errorf("goals in progress = %d, want 1", sum.GoalsInProgress)
	}
	if !sum.Finance.Balance.Equal(M(180, "USD")) {
		t.Errorf("balance = %s, want $180.00", sum.Finance.Balance)
	}
	if len(sum.TopStreaks) != 1 || sum.TopStreaks[0].Habit.ID != "h1" || sum.TopStreaks[0].Streak != 2 {
		t.Errorf("top streaks = %+v, want h1 at 2", sum.TopStreaks)
	}
	if len(sum.UpcomingBirthdays) != 1 || sum.UpcomingBirthdays[0].Relationship.ID != "r1" {
		t.Errorf("upcoming birthdays = %+v, want just Sam", sum.UpcomingBirthdays)
	}
	if sum.UpcomingBirthdays[0].InDays != 9 {
		t.Errorf("Sam's birthday in %d days, want 9", sum.UpcomingBirthdays[0].InDays)
	}
}
