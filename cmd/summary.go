package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin/date"
	"github.com/etnz/lifeadmin/docs"
	"github.com/etnz/lifeadmin/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the daily dashboard" }
func (*summaryCmd) Usage() string {
	return `lad summary [-d <date>]

  Displays the dashboard: projects, tasks, finances, streaks and birthdays.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Day to report on. See 'lad topic dates' for the format.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// First run: show the welcome once, then the dashboard as usual.
	if !store.WelcomeSeen() {
		if welcome, err := docs.GetTopic("readme"); err == nil {
			printMarkdown(welcome)
		}
		store.SetWelcomeSeen()
	}

	sum := store.Summarize(on)
	printMarkdown(renderer.SummaryMarkdown(&sum))
	return subcommands.ExitSuccess
}
