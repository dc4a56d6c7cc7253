package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// noteCmd holds the flags for the 'note' subcommand.
type noteCmd struct {
	add      bool
	set      string
	rm       string
	title    string
	content  string
	category string
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "list and manage notes" }
func (*noteCmd) Usage() string {
	return `lad note [-add | -set <id> | -rm <id>] [-title <title>] [-content <text>] [-category <cat>]

  Without flags, lists all notes, most recent first.
`
}

func (c *noteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new note.")
	f.StringVar(&c.set, "set", "", "Edit the note with this id.")
	f.StringVar(&c.rm, "rm", "", "Delete the note with this id.")
	f.StringVar(&c.title, "title", "", "Note title.")
	f.StringVar(&c.content, "content", "", "Note content.")
	f.StringVar(&c.category, "category", "", "Note category.")
}

func (c *noteCmd) patch() lifeadmin.NotePatch {
	var patch lifeadmin.NotePatch
	if c.title != "" {
		patch.Title = &c.title
	}
	if c.content != "" {
		patch.Content = &c.content
	}
	if c.category != "" {
		patch.Category = &c.category
	}
	return patch
}

func (c *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add:
		n := store.AddNote()
		store.UpdateNote(n.ID, c.patch())
		fmt.Printf("Created note %s\n", n.ID)

	case c.set != "":
		if !store.UpdateNote(c.set, c.patch()) {
			fmt.Fprintf(os.Stderr, "Error: no note %q\n", c.set)
			return subcommands.ExitFailure
		}

	case c.rm != "":
		if !store.DeleteNote(c.rm) {
			fmt.Fprintf(os.Stderr, "Error: no note %q\n", c.rm)
			return subcommands.ExitFailure
		}

	default:
		var rows [][]string
		for _, n := range store.Notes() {
			rows = append(rows, []string{n.ID, n.Title, n.Category, n.CreatedAt.Format("2006-01-02")})
		}
		printMarkdown(listTable("Notes", []string{"Id", "Title", "Category", "Created"}, rows))
	}
	return subcommands.ExitSuccess
}
