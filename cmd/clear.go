package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// clearCmd holds the flags for the 'clear' subcommand.
type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all data" }
func (*clearCmd) Usage() string {
	return `lad clear [-f]

  Deletes every collection after confirmation. The license key and the
  welcome flag are kept. Consider 'lad export' first.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Do not ask for confirmation.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force && !confirm("This deletes all your data. Continue?") {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	if err := lifeadmin.ClearAll(OpenStorage()); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("All data cleared.")
	return subcommands.ExitSuccess
}
