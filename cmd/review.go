package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/etnz/lifeadmin/date"
	"github.com/etnz/lifeadmin/renderer"
	"github.com/google/subcommands"
)

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	date       string
	wins       string
	challenges string
	lessons    string
	focus      string
	gratitude  string
	list       bool
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "write and read weekly reviews" }
func (*reviewCmd) Usage() string {
	return `lad review [-d <date>] [-wins <text>] [-challenges <text>] [-lessons <text>] [-focus <text>] [-gratitude <text>] [-list]

  Shows the review of the week containing the date (default today). Any text
  flag updates that week's review, creating it if needed. -list shows all
  past reviews.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Any day of the week to review.")
	f.StringVar(&c.wins, "wins", "", "What went well this week.")
	f.StringVar(&c.challenges, "challenges", "", "What was hard this week.")
	f.StringVar(&c.lessons, "lessons", "", "What you learned.")
	f.StringVar(&c.focus, "focus", "", "Focus for next week.")
	f.StringVar(&c.gratitude, "gratitude", "", "What you are grateful for.")
	f.BoolVar(&c.list, "list", false, "List all reviews.")
}

func (c *reviewCmd) patch() (patch lifeadmin.WeeklyReviewPatch, dirty bool) {
	if c.wins != "" {
		patch.Wins, dirty = &c.wins, true
	}
	if c.challenges != "" {
		patch.Challenges, dirty = &c.challenges, true
	}
	if c.lessons != "" {
		patch.Lessons, dirty = &c.lessons, true
	}
	if c.focus != "" {
		patch.NextWeekFocus, dirty = &c.focus, true
	}
	if c.gratitude != "" {
		patch.Gratitude, dirty = &c.gratitude, true
	}
	return patch, dirty
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.list {
		var rows [][]string
		for _, r := range store.Reviews() {
			rows = append(rows, []string{r.ID, r.WeekOf.String(), r.Wins})
		}
		printMarkdown(listTable("Weekly Reviews", []string{"Id", "Week Of", "Wins"}, rows))
		return subcommands.ExitSuccess
	}

	review := store.ReviewOfWeek(on)
	if patch, dirty := c.patch(); dirty {
		if review == nil {
			r := store.AddReview(on)
			review = &r
		}
		store.UpdateReview(review.ID, patch)
		review = store.ReviewOfWeek(on)
	}

	if review == nil {
		fmt.Printf("No review yet for the week of %s. Set -wins, -challenges, -lessons, -focus or -gratitude to start one.\n", on.StartOfWeek())
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderReview(review))
	return subcommands.ExitSuccess
}
