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

// contactCmd holds the flags for the 'contact' subcommand.
type contactCmd struct {
	add      bool
	set      string
	rm       string
	touch    string
	name     string
	category string
	birthday string
	action   string
}

func (*contactCmd) Name() string     { return "contact" }
func (*contactCmd) Synopsis() string { return "keep in touch with people" }
func (*contactCmd) Usage() string {
	return `lad contact [-add | -set <id> | -touch <id> | -rm <id>] [-name <name>] [-category <cat>] [-birthday <date>] [-action <text>]

  Without flags, lists contacts with days since last contact and the next
  birthday. -touch records a contact made today.
`
}

func (c *contactCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Create a new contact.")
	f.StringVar(&c.set, "set", "", "Edit the contact with this id.")
	f.StringVar(&c.touch, "touch", "", "Record a contact made today for this id.")
	f.StringVar(&c.rm, "rm", "", "Delete the contact with this id.")
	f.StringVar(&c.name, "name", "", "Contact name.")
	f.StringVar(&c.category, "category", "", "Category, e.g. 'Family'.")
	f.StringVar(&c.birthday, "birthday", "", "Birthday; the year is ignored for reminders.")
	f.StringVar(&c.action, "action", "", "Next action to take with this person.")
}

func (c *contactCmd) patch() (lifeadmin.RelationshipPatch, error) {
	var patch lifeadmin.RelationshipPatch
	if c.name != "" {
		patch.Name = &c.name
	}
	if c.category != "" {
		patch.Category = &c.category
	}
	if c.action != "" {
		patch.NextAction = &c.action
	}
	if c.birthday != "" {
		d, err := date.Parse(c.birthday)
		if err != nil {
			return patch, err
		}
		patch.Birthday = &d
	}
	return patch, nil
}

func (c *contactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	today := date.Today()

	switch {
	case c.add:
		patch, err := c.patch()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		r := store.AddRelationship()
		store.UpdateRelationship(r.ID, patch)
		fmt.Printf("Created contact %s\n", r.ID)

	case c.set != "":
		patch, err := c.patch()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		if !store.UpdateRelationship(c.set, patch) {
			fmt.Fprintf(os.Stderr, "Error: no contact %q\n", c.set)
			return subcommands.ExitFailure
		}

	case c.touch != "":
		if !store.UpdateRelationship(c.touch, lifeadmin.RelationshipPatch{LastContact: &today}) {
			fmt.Fprintf(os.Stderr, "Error: no contact %q\n", c.touch)
			return subcommands.ExitFailure
		}

	case c.rm != "":
		if !store.DeleteRelationship(c.rm) {
			fmt.Fprintf(os.Stderr, "Error: no contact %q\n", c.rm)
			return subcommands.ExitFailure
		}

	default:
		var rows [][]string
		for _, r := range store.Relationships() {
			lastContact := "never"
			if days, ok := lifeadmin.DaysSince(r.LastContact, today); ok {
				lastContact = fmt.Sprintf("%d days ago", days)
			}
			birthday := ""
			if days, ok := lifeadmin.DaysUntilBirthday(r.Birthday, today); ok {
				birthday = fmt.Sprintf("in %d days", days)
				if days == 0 {
					birthday = "today!"
				}
			}
			rows = append(rows, []string{r.ID, r.Name, r.Category, lastContact, birthday, r.NextAction})
		}
		printMarkdown(listTable("Contacts", []string{"Id", "Name", "Category", "Last Contact", "Birthday", "Next Action"}, rows))
	}
	return subcommands.ExitSuccess
}
