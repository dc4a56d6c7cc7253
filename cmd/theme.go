package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// themeCmd holds the flags for the 'theme' subcommand.
type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or change the theme" }
func (*themeCmd) Usage() string {
	return `lad theme [soft|noir]

  Without argument, prints the current theme.
`
}

func (*themeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Println(store.Theme())
		return subcommands.ExitSuccess
	}

	theme := f.Arg(0)
	if theme != lifeadmin.ThemeSoft && theme != lifeadmin.ThemeNoir {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q, expected %q or %q\n", theme, lifeadmin.ThemeSoft, lifeadmin.ThemeNoir)
		return subcommands.ExitUsageError
	}
	store.SetTheme(theme)
	fmt.Printf("Theme set to %s\n", theme)
	return subcommands.ExitSuccess
}
