package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// inspectCmd holds the flags for the 'inspect' subcommand.
type inspectCmd struct {
	file string
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "query the raw data with a JSON path" }
func (*inspectCmd) Usage() string {
	return `lad inspect [-f <backup-file>] <json-path>

  Evaluates a JSON path against the data, live or from a backup file.
  For example:

    lad inspect '$.theme'
    lad inspect -f life-admin-backup-2026-09-01.json '$.version'
`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Inspect this backup file instead of the live data.")
}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSON path")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	var raw []byte
	if c.file != "" {
		var err error
		raw, err = os.ReadFile(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
	} else {
		var err error
		raw, err = json.Marshal(lifeadmin.ExportAll(OpenStorage(), time.Now()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding data: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing data: %v\n", err)
		return subcommands.ExitFailure
	}

	value, err := jsonpath.Get(path, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
