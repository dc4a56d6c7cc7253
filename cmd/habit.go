package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/etnz/lifeadmin/date"
	"github.com/google/subcommands"
)

// habitCmd holds the flags for the 'habit' subcommand.
type habitCmd struct {
	add    bool
	set    string
	rm     string
	toggle string
	name   string
	freq   string
}

func (*habitCmd) Name() string     { return "habit" }
func (*habitCmd) Synopsis() string { return "track daily habits and streaks" }
func (*habitCmd) Usage() string {
	return `lad habit [-add | -set <id> | -toggle <id> | -rm <id>] [-name <name>] [-freq <frequency>]

  Without flags, lists all habits with today's mark and the current streak.
  -toggle flips today's completion mark. See 'lad topic habits'.
`
}

func (c *habitCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new habit.")
	f.StringVar(&c.set, "set", "", "Edit the habit with this id.")
	f.StringVar(&c.toggle, "toggle", "", "Toggle today's completion for this id.")
	f.StringVar(&c.rm, "rm", "", "Delete the habit with this id.")
	f.StringVar(&c.name, "name", "", "Habit name.")
	f.StringVar(&c.freq, "freq", "", "Frequency, e.g. 'Daily'.")
}

func (c *habitCmd) patch() lifeadmin.HabitPatch {
	var patch lifeadmin.HabitPatch
	if c.name != "" {
		patch.Name = &c.name
	}
	if c.freq != "" {
		patch.Frequency = &c.freq
	}
	return patch
}

func (c *habitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	today := date.Today()

	switch {
	case c.add:
		h := store.AddHabit()
		store.UpdateHabit(h.ID, c.patch())
		fmt.Printf("Created habit %s\n", h.ID)

	case c.set != "":
		if !store.UpdateHabit(c.set, c.patch()) {
			fmt.Fprintf(os.Stderr, "Error: no habit %q\n", c.set)
			return subcommands.ExitFailure
		}

	case c.toggle != "":
		if !store.ToggleHabit(c.toggle, today) {
			fmt.Fprintf(os.Stderr, "Error: no habit %q\n", c.toggle)
			return subcommands.ExitFailure
		}

	case c.rm != "":
		if !store.DeleteHabit(c.rm) {
			fmt.Fprintf(os.Stderr, "Error: no habit %q\n", c.rm)
			return subcommands.ExitFailure
		}

	default:
		var rows [][]string
		for _, h := range store.Habits() {
			mark := " "
			if h.CompletedOn(today) {
				mark = "x"
			}
			streak := lifeadmin.Streak(h.CompletedDates, today)
			rows = append(rows, []string{h.ID, mark, h.Name, h.Frequency, fmt.Sprintf("%d days", streak)})
		}
		printMarkdown(listTable("Habits", []string{"Id", "Today", "Name", "Frequency", "Streak"}, rows))
	}
	return subcommands.ExitSuccess
}
