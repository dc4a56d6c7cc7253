// Package cmd implements the CLI application to manage a personal life
// organizer.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/lifeadmin"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&projectCmd{},
	&taskCmd{},
	&noteCmd{},
	&goalCmd{},
	&habitCmd{},
	&cashCmd{},
	&contactCmd{},
	&reviewCmd{},
	&balanceCmd{},
	&somedayCmd{},
	&exportCmd{},
	&importCmd{},
	&clearCmd{},
	&inspectCmd{},
	&themeCmd{},
	&licenseCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataPath = flag.String("data-path", defaultDataPath(), "Path to the data directory")

func defaultDataPath() string {
	if p := os.Getenv("LIFEADMIN_PATH"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lifeadmin"
	}
	return filepath.Join(home, ".lifeadmin")
}

// OpenStorage returns the app's durable storage.
func OpenStorage() lifeadmin.Storage {
	return lifeadmin.NewDirStorage(*dataPath)
}

// OpenStore is the central function to open the organizer: it hydrates a
// store from the data directory and arms write-back.
func OpenStore() (*lifeadmin.Store, error) {
	s := lifeadmin.NewStore(OpenStorage())
	s.Hydrate()
	s.EnableAutosave()
	return s, nil
}

// confirm asks the user a yes/no question on the terminal.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
