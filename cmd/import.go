package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore data from a backup file" }
func (*importCmd) Usage() string {
	return `lad import <file>

  Restores a backup bundle. The file is checked in full before anything is
  written: a malformed bundle changes nothing. See 'lad topic backups'.
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := lifeadmin.ImportAll(OpenStorage(), file); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %s\n", filename)
	return subcommands.ExitSuccess
}
