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

// taskCmd holds the flags for the 'task' subcommand.
type taskCmd struct {
	add      bool
	set      string
	rm       string
	done     string
	title    string
	due      string
	priority string
	project  string
	all      bool
}

func (*taskCmd) Name() string     { return "task" }
func (*taskCmd) Synopsis() string { return "list and manage tasks" }
func (*taskCmd) Usage() string {
	return `lad task [-add | -set <id> | -done <id> | -rm <id>] [-title <title>] [-due <date>] [-priority <p>] [-project <id>] [-all]

  Without flags, lists open tasks (-all includes completed ones).
  -done marks a task completed. Overdue tasks are flagged with '!'.
`
}

func (c *taskCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new task.")
	f.StringVar(&c.set, "set", "", "Edit the task with this id.")
	f.StringVar(&c.done, "done", "", "Mark the task with this id completed.")
	f.StringVar(&c.rm, "rm", "", "Delete the task with this id.")
	f.StringVar(&c.title, "title", "", "Task title.")
	f.StringVar(&c.due, "due", "", "Due date. Empty means no deadline.")
	f.StringVar(&c.priority, "priority", "", "Priority (Low, Medium, High).")
	f.StringVar(&c.project, "project", "", "Id of the project this task belongs to.")
	f.BoolVar(&c.all, "all", false, "Include completed tasks in the list.")
}

func (c *taskCmd) patch(f *flag.FlagSet) (lifeadmin.TaskPatch, error) {
	var patch lifeadmin.TaskPatch
	if c.title != "" {
		patch.Title = &c.title
	}
	if c.project != "" {
		patch.Project = &c.project
	}
	dueSet := false
	f.Visit(func(fl *flag.Flag) { dueSet = dueSet || fl.Name == "due" })
	if dueSet {
		// An explicit -due "" clears the deadline.
		d, err := date.Parse(c.due)
		if err != nil {
			return patch, err
		}
		patch.DueDate = &d
	}
	if c.priority != "" {
		p, err := lifeadmin.ParsePriority(c.priority)
		if err != nil {
			return patch, err
		}
		patch.Priority = &p
	}
	return patch, nil
}

func (c *taskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add:
		patch, err := c.patch(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		t := store.AddTask()
		store.UpdateTask(t.ID, patch)
		fmt.Printf("Created task %s\n", t.ID)

	case c.set != "":
		patch, err := c.patch(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		if !store.UpdateTask(c.set, patch) {
			fmt.Fprintf(os.Stderr, "Error: no task %q\n", c.set)
			return subcommands.ExitFailure
		}

	case c.done != "":
		completed := true
		if !store.UpdateTask(c.done, lifeadmin.TaskPatch{Completed: &completed}) {
			fmt.Fprintf(os.Stderr, "Error: no task %q\n", c.done)
			return subcommands.ExitFailure
		}

	case c.rm != "":
		if !store.DeleteTask(c.rm) {
			fmt.Fprintf(os.Stderr, "Error: no task %q\n", c.rm)
			return subcommands.ExitFailure
		}

	default:
		today := date.Today()
		var rows [][]string
		for _, t := range store.Tasks() {
			if t.Completed && !c.all {
				continue
			}
			status := " "
			if t.Completed {
				status = "x"
			} else if t.Overdue(today) {
				status = "!"
			}
			project := ""
			if p := store.ProjectByID(t.Project); p != nil {
				project = p.Label
			}
			rows = append(rows, []string{t.ID, status, t.Title, t.DueDate.String(), string(t.Priority), project})
		}
		printMarkdown(listTable("Tasks", []string{"Id", "", "Title", "Due", "Priority", "Project"}, rows))
	}
	return subcommands.ExitSuccess
}
