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

// cashCmd holds the flags for the 'cash' subcommand.
type cashCmd struct {
	add    string
	set    string
	rm     string
	amount float64
	desc   string
	date   string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "track income and expenses" }
func (*cashCmd) Usage() string {
	return `lad cash [-add income|expense -amount <n> [-desc <text>] [-d <date>] | -set <id> | -rm <id>]

  Without flags, lists all entries and the income / expenses / balance totals.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create an entry of this type (income or expense).")
	f.StringVar(&c.set, "set", "", "Edit the entry with this id.")
	f.StringVar(&c.rm, "rm", "", "Delete the entry with this id.")
	f.Float64Var(&c.amount, "amount", 0, "Entry amount.")
	f.StringVar(&c.desc, "desc", "", "Entry description.")
	f.StringVar(&c.date, "d", "", "Entry date, defaults to today.")
}

func (c *cashCmd) patch(f *flag.FlagSet) (lifeadmin.FinanceEntryPatch, error) {
	var patch lifeadmin.FinanceEntryPatch
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "amount" {
			patch.Amount = &c.amount
		}
	})
	if c.desc != "" {
		patch.Description = &c.desc
	}
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			return patch, err
		}
		patch.Date = &d
	}
	return patch, nil
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		typ, err := lifeadmin.ParseEntryType(c.add)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch, err := c.patch(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		e := store.AddFinanceEntry(typ)
		store.UpdateFinanceEntry(e.ID, patch)
		fmt.Printf("Created %s entry %s\n", typ, e.ID)

	case c.set != "":
		patch, err := c.patch(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		if !store.UpdateFinanceEntry(c.set, patch) {
			fmt.Fprintf(os.Stderr, "Error: no entry %q\n", c.set)
			return subcommands.ExitFailure
		}

	case c.rm != "":
		if !store.DeleteFinanceEntry(c.rm) {
			fmt.Fprintf(os.Stderr, "Error: no entry %q\n", c.rm)
			return subcommands.ExitFailure
		}

	default:
		entries := store.FinanceEntries()
		var rows [][]string
		for _, e := range entries {
			amount := lifeadmin.M(e.Amount, lifeadmin.DefaultCurrency).String()
			rows = append(rows, []string{e.ID, string(e.Type), amount, e.Description, e.Date.String()})
		}
		printMarkdown(listTable("Cash", []string{"Id", "Type", "Amount", "Description", "Date"}, rows))

		sum := lifeadmin.Summarize(entries, lifeadmin.DefaultCurrency)
		printMarkdown(fmt.Sprintf("Income %s, expenses %s, balance **%s**.\n",
			sum.Income, sum.Expenses, sum.Balance.SignedString()))
	}
	return subcommands.ExitSuccess
}
