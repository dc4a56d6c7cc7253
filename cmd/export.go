package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/lifeadmin"
	"github.com/etnz/lifeadmin/date"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all data to a backup file" }
func (*exportCmd) Usage() string {
	return `lad export [-o <file>]

  Writes every collection to a single JSON backup bundle. By default the
  file is named life-admin-backup-<today>.json. '-o -' writes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the dated backup name, '-' for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	backup := lifeadmin.ExportAll(OpenStorage(), time.Now())

	if c.output == "-" {
		if err := backup.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding backup: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}

	filename := c.output
	if filename == "" {
		filename = lifeadmin.BackupFilename(date.Today())
	}
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := backup.Encode(file); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported to %s\n", filename)
	return subcommands.ExitSuccess
}
