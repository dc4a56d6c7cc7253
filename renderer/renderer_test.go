package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/lifeadmin"
	"github.com/etnz/lifeadmin/date"
)

func TestRenderReview(t *testing.T) {
	r := &lifeadmin.WeeklyReview{
		ID:         "1",
		WeekOf:     date.New(2026, time.August, 30),
		Wins:       "Shipped the garden fence.",
		Challenges: "Too many late evenings.",
		Gratitude:  "Sunny weather all week.",
	}
	got := RenderReview(r)

	for _, want := range []string{
		"# Weekly Review, week of 2026-08-30",
		"## Wins\n\nShipped the garden fence.",
		"## Challenges\n\nToo many late evenings.",
		"## Gratitude\n\nSunny weather all week.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered review is missing %q:\n%s", want, got)
		}
	}
	// Empty sections are left out entirely.
	if strings.Contains(got, "## Lessons") || strings.Contains(got, "## Next Week Focus") {
		t.Errorf("rendered review contains empty sections:\n%s", got)
	}
	if strings.Contains(got, "error") {
		t.Errorf("template error in output:\n%s", got)
	}
}

func TestRenderBalance(t *testing.T) {
	areas := []lifeadmin.LifeArea{
		{ID: "a1", Name: "Health", Score: 7},
		{ID: "a2", Name: "Career", Score: 4},
	}
	got := RenderBalance(areas)

	for _, want := range []string{
		"# Life Balance",
		"| Health | 7/10 | ███████░░░ |",
		"| Career | 4/10 | ████░░░░░░ |",
		"Average: 5.5/10",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered balance is missing %q:\n%s", want, got)
		}
	}
}

func TestRenderWheelSVG(t *testing.T) {
	got := RenderWheelSVG(lifeadmin.DefaultLifeAreas(), 400)

	if !strings.HasPrefix(got, "<svg") || !strings.HasSuffix(strings.TrimSpace(got), "</svg>") {
		t.Fatalf("not an svg document:\n%s", got)
	}
	for _, want := range []string{`<path d="M `, "Spirituality", `r="152"`} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered wheel is missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "NaN") {
		t.Errorf("wheel contains NaN:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := &lifeadmin.Summary{
		Day:            date.New(2026, time.July, 1),
		ActiveProjects: 2,
		OpenTasks:      5,
		Finance:        lifeadmin.Summarize([]lifeadmin.FinanceEntry{{ID: "1", Type: lifeadmin.Income, Amount: 100}}, "USD"),
		TopStreaks: []lifeadmin.HabitStreak{
			{Habit: lifeadmin.Habit{ID: "h1", Name: "Stretch"}, Streak: 4},
		},
	}
	got := SummaryMarkdown(s)

	for _, want := range []string{
		"# Life Admin on 2026-07-01",
		"## Finance",
		"## Habit Streaks",
		"Stretch",
		"4 days",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary is missing %q:\n%s", want, got)
		}
	}
	// Sections without content are dropped.
	if strings.Contains(got, "## Overdue Tasks") || strings.Contains(got, "## Upcoming Birthdays") {
		t.Errorf("summary contains empty sections:\n%s", got)
	}
}
