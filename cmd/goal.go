package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	add       bool
	set       string
	rm        string
	title     string
	timeframe string
	progress  int
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "list and manage goals" }
func (*goalCmd) Usage() string {
	return `lad goal [-add | -set <id> | -rm <id>] [-title <title>] [-timeframe <tf>] [-progress <pct>]

  Without flags, lists all goals with their progress.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new goal.")
	f.StringVar(&c.set, "set", "", "Edit the goal with this id.")
	f.StringVar(&c.rm, "rm", "", "Delete the goal with this id.")
	f.StringVar(&c.title, "title", "", "Goal title.")
	f.StringVar(&c.timeframe, "timeframe", "", "Timeframe, e.g. '3 months'.")
	f.IntVar(&c.progress, "progress", -1, "Progress percentage.")
}

func (c *goalCmd) patch() lifeadmin.GoalPatch {
	var patch lifeadmin.GoalPatch
	if c.title != "" {
		patch.Title = &c.title
	}
	if c.timeframe != "" {
		patch.Timeframe = &c.timeframe
	}
	if c.progress >= 0 {
		// The editing surface clamps; the store stays permissive.
		if c.progress > 100 {
			c.progress = 100
		}
		patch.Progress = &c.progress
	}
	return patch
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add:
		g := store.AddGoal()
		store.UpdateGoal(g.ID, c.patch())
		fmt.Printf("Created goal %s\n", g.ID)

	case c.set != "":
		if !store.UpdateGoal(c.set, c.patch()) {
			fmt.Fprintf(os.Stderr, "Error: no goal %q\n", c.set)
			return subcommands.ExitFailure
		}

	case c.rm != "":
		if !store.DeleteGoal(c.rm) {
			fmt.Fprintf(os.Stderr, "Error: no goal %q\n", c.rm)
			return subcommands.ExitFailure
		}

	default:
		var rows [][]string
		for _, g := range store.Goals() {
			rows = append(rows, []string{g.ID, g.Title, g.Timeframe, fmt.Sprintf("%d%%", g.Progress)})
		}
		printMarkdown(listTable("Goals", []string{"Id", "Title", "Timeframe", "Progress"}, rows))
	}
	return subcommands.ExitSuccess
}
