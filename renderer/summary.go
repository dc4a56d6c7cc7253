package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/lifeadmin"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the daily dashboard to a markdown string.
func SummaryMarkdown(s *lifeadmin.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Life Admin on %s", s.Day))

	doc.Table(md.TableSet{
		Header: []string{"Active Projects", "Open Tasks", "Goals In Progress"},
		Rows: [][]string{{
			fmt.Sprintf("%d", s.ActiveProjects),
			fmt.Sprintf("%d", s.OpenTasks),
			fmt.Sprintf("%d", s.GoalsInProgress),
		}},
	})

	doc.H2("Finance")
	doc.Table(md.TableSet{
		Header: []string{"Income", "Expenses", "Balance"},
		Rows: [][]string{{
			s.Finance.Income.String(),
			s.Finance.Expenses.String(),
			s.Finance.Balance.SignedString(),
		}},
	})
	doc.Build()

	ConditionalBlock(&buf, func(w io.Writer) bool {
		if len(s.OverdueTasks) == 0 {
			return false
		}
		block := md.NewMarkdown(w)
		block.H2("Overdue Tasks")
		rows := make([][]string, len(s.OverdueTasks))
		for i, t := range s.OverdueTasks {
			rows[i] = []string{t.Title, t.DueDate.String(), string(t.Priority)}
		}
		block.Table(md.TableSet{Header: []string{"Task", "Due", "Priority"}, Rows: rows})
		block.Build()
		return true
	})

	ConditionalBlock(&buf, func(w io.Writer) bool {
		if len(s.TopStreaks) == 0 {
			return false
		}
		block := md.NewMarkdown(w)
		block.H2("Habit Streaks")
		rows := make([][]string, len(s.TopStreaks))
		for i, hs := range s.TopStreaks {
			rows[i] = []string{hs.Habit.Name, fmt.Sprintf("%d days", hs.Streak)}
		}
		block.Table(md.TableSet{Header: []string{"Habit", "Streak"}, Rows: rows})
		block.Build()
		return true
	})

	ConditionalBlock(&buf, func(w io.Writer) bool {
		if len(s.UpcomingBirthdays) == 0 {
			return false
		}
		block := md.NewMarkdown(w)
		block.H2("Upcoming Birthdays")
		rows := make([][]string, len(s.UpcomingBirthdays))
		for i, b := range s.UpcomingBirthdays {
			when := fmt.Sprintf("in %d days", b.InDays)
			if b.InDays == 0 {
				when = "today"
			}
			rows[i] = []string{b.Relationship.Name, when}
		}
		block.Table(md.TableSet{Header: []string{"Who", "When"}, Rows: rows})
		block.Build()
		return true
	})

	return buf.String()
}
