package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// somedayCmd holds the flags for the 'someday' subcommand.
type somedayCmd struct {
	add      string
	set      string
	rm       string
	desc     string
	category string
}

func (*somedayCmd) Name() string     { return "someday" }
func (*somedayCmd) Synopsis() string { return "park ideas for later" }
func (*somedayCmd) Usage() string {
	return `lad someday [-add <title> | -set <id> | -rm <id>] [-desc <text>] [-category <cat>]

  Without flags, lists the someday/maybe ideas.
`
}

func (c *somedayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Park a new idea with this title.")
	f.StringVar(&c.set, "set", "", "Edit the idea with this id.")
	f.StringVar(&c.rm, "rm", "", "Delete the idea with this id.")
	f.StringVar(&c.desc, "desc", "", "Idea description.")
	f.StringVar(&c.category, "category", "", "Idea category.")
}

func (c *somedayCmd) patch() lifeadmin.SomedayItemPatch {
	var patch lifeadmin.SomedayItemPatch
	if c.desc != "" {
		patch.Description = &c.desc
	}
	if c.category != "" {
		patch.Category = &c.category
	}
	return patch
}

func (c *somedayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		i := store.AddSomedayItem(c.add)
		store.UpdateSomedayItem(i.ID, c.patch())
		fmt.Printf("Parked idea %s\n", i.ID)

	case c.set != "":
		if !store.UpdateSomedayItem(c.set, c.patch()) {
			fmt.Fprintf(os.Stderr, "Error: no idea %q\n", c.set)
			return subcommands.ExitFailure
		}

	case c.rm != "":
		if !store.DeleteSomedayItem(c.rm) {
			fmt.Fprintf(os.Stderr, "Error: no idea %q\n", c.rm)
			return subcommands.ExitFailure
		}

	default:
		var rows [][]string
		for _, i := range store.SomedayItems() {
			rows = append(rows, []string{i.ID, i.Title, i.Category, i.AddedDate.String()})
		}
		printMarkdown(listTable("Someday / Maybe", []string{"Id", "Title", "Category", "Added"}, rows))
	}
	return subcommands.ExitSuccess
}
