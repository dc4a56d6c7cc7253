package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	add    bool
	set    string
	rm     string
	label  string
	status string
	notes  string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "list and manage projects" }
func (*projectCmd) Usage() string {
	return `lad project [-add | -set <id> | -rm <id>] [-label <label>] [-status <status>] [-notes <notes>]

  Without flags, lists all projects. -add creates a project, -set edits one,
  -rm deletes one.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new project.")
	f.StringVar(&c.set, "set", "", "Edit the project with this id.")
	f.StringVar(&c.rm, "rm", "", "Delete the project with this id.")
	f.StringVar(&c.label, "label", "", "Project label.")
	f.StringVar(&c.status, "status", "", "Project status (Planning, In Progress, On Hold, Completed, Cancelled).")
	f.StringVar(&c.notes, "notes", "", "Project notes.")
}

func (c *projectCmd) patch() (lifeadmin.ProjectPatch, error) {
	var patch lifeadmin.ProjectPatch
	if c.label != "" {
		patch.Label = &c.label
	}
	if c.notes != "" {
		patch.Notes = &c.notes
	}
	if c.status != "" {
		status, err := lifeadmin.ParseProjectStatus(c.status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}
	return patch, nil
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add:
		patch, err := c.patch()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		p := store.AddProject()
		store.UpdateProject(p.ID, patch)
		fmt.Printf("Created project %s\n", p.ID)

	case c.set != "":
		patch, err := c.patch()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		if !store.UpdateProject(c.set, patch) {
			fmt.Fprintf(os.Stderr, "Error: no project %q\n", c.set)
			return subcommands.ExitFailure
		}

	case c.rm != "":
		if !store.DeleteProject(c.rm) {
			fmt.Fprintf(os.Stderr, "Error: no project %q\n", c.rm)
			return subcommands.ExitFailure
		}

	default:
		var rows [][]string
		for _, p := range store.Projects() {
			rows = append(rows, []string{p.ID, p.Label, string(p.Status), p.Notes})
		}
		printMarkdown(listTable("Projects", []string{"Id", "Label", "Status", "Notes"}, rows))
	}
	return subcommands.ExitSuccess
}
