package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifeadmin"
	"github.com/etnz/lifeadmin/renderer"
	"github.com/google/subcommands"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	set   string
	score int
	notes string
	svg   string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "score and draw the life balance wheel" }
func (*balanceCmd) Usage() string {
	return `lad balance [-set <id> [-score <n>] [-notes <text>]] [-svg <file>]

  Without flags, prints the life areas with their scores. -svg writes the
  wheel as an SVG file. See 'lad topic balance'.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Edit the life area with this id.")
	f.IntVar(&c.score, "score", -1, "Score from 0 to 10.")
	f.StringVar(&c.notes, "notes", "", "Notes for the area.")
	f.StringVar(&c.svg, "svg", "", "Write the wheel to this SVG file.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.set != "" {
		var patch lifeadmin.LifeAreaPatch
		if c.score >= 0 {
			// The editing surface clamps; the store stays permissive.
			if c.score > 10 {
				c.score = 10
			}
			patch.Score = &c.score
		}
		if c.notes != "" {
			patch.Notes = &c.notes
		}
		if !store.UpdateLifeArea(c.set, patch) {
			fmt.Fprintf(os.Stderr, "Error: no life area %q\n", c.set)
			return subcommands.ExitFailure
		}
	}

	if c.svg != "" {
		svg := renderer.RenderWheelSVG(store.LifeAreas(), 400)
		if err := os.WriteFile(c.svg, []byte(svg), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.svg, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote wheel to %s\n", c.svg)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderBalance(store.LifeAreas()))
	return subcommands.ExitSuccess
}
