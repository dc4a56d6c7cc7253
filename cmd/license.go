package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// licenseCmd holds the flags for the 'license' subcommand.
type licenseCmd struct{}

func (*licenseCmd) Name() string     { return "license" }
func (*licenseCmd) Synopsis() string { return "show or set the license key" }
func (*licenseCmd) Usage() string {
	return `lad license [<key>]

  Without argument, shows the stored license key. With a key, validates and
  stores it. Keys look like XXXX-XXXX-XXXX-XXXX; 'DEMO' works too.
`
}

func (*licenseCmd) SetFlags(_ *flag.FlagSet) {}

func (c *licenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		key := store.LicenseKey()
		if key == "" {
			fmt.Println("No license key stored.")
		} else {
			fmt.Println(key)
		}
		return subcommands.ExitSuccess
	}

	key := f.Arg(0)
	if !lifeadmin.ValidLicenseKey(key) {
		fmt.Fprintf(os.Stderr, "Error: %q is not a valid license key\n", key)
		return subcommands.ExitFailure
	}
	store.SetLicenseKey(key)
	fmt.Println("License key stored.")
	return subcommands.ExitSuccess
}
