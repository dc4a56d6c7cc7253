package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

// run executes a subcommand against a temporary data directory.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags for %s: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func tempDataPath(t *testing.T) {
	t.Helper()
	old := *dataPath
	*dataPath = t.TempDir()
	t.Cleanup(func() { *dataPath = old })
}

func TestTaskAddAndComplete(t *testing.T) {
	tempDataPath(t)

	if got := run(t, &taskCmd{}, "-add", "-title", "Water the plants"); got != subcommands.ExitSuccess {
		t.Fatalf("task -add exited %v", got)
	}

	store, err := OpenStore()
	if err != nil {
		t.Fatal(err)
	}
	tasks := store.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Water the plants" {
		t.Fatalf("tasks after add = %+v", tasks)
	}

	if got := run(t, &taskCmd{}, "-done", tasks[0].ID); got != subcommands.ExitSuccess {
		t.Fatalf("task -done exited %v", got)
	}
	store, _ = OpenStore()
	if !store.Tasks()[0].Completed {
		t.Error("task not completed after -done")
	}
}

func TestTaskUnknownID(t *testing.T) {
	tempDataPath(t)
	if got := run(t, &taskCmd{}, "-rm", "nope"); got != subcommands.ExitFailure {
		t.Errorf("task -rm nope exited %v, want failure", got)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	tempDataPath(t)

	if got := run(t, &themeCmd{}, "noir"); got != subcommands.ExitSuccess {
		t.Fatalf("theme noir exited %v", got)
	}
	store, _ := OpenStore()
	if store.Theme() != "noir" {
		t.Errorf("theme = %q, want noir", store.Theme())
	}

	if got := run(t, &themeCmd{}, "sparkly"); got != subcommands.ExitUsageError {
		t.Errorf("unknown theme exited %v, want usage error", got)
	}
}

func TestExportImportCommands(t *testing.T) {
	tempDataPath(t)

	run(t, &habitCmd{}, "-add", "-name", "Stretch")
	backup := t.TempDir() + "/backup.json"
	if got := run(t, &exportCmd{}, "-o", backup); got != subcommands.ExitSuccess {
		t.Fatalf("export exited %v", got)
	}

	// Import into a fresh data directory.
	tempDataPath(t)
	if got := run(t, &importCmd{}, backup); got != subcommands.ExitSuccess {
		t.Fatalf("import exited %v", got)
	}
	store, _ := OpenStore()
	habits := store.Habits()
	if len(habits) != 1 || habits[0].Name != "Stretch" {
		t.Errorf("habits after import = %+v", habits)
	}
}

func TestGoalProgressClamped(t *testing.T) {
	tempDataPath(t)

	run(t, &goalCmd{}, "-add", "-title", "Read 12 books")
	store, _ := OpenStore()
	id := store.Goals()[0].ID

	if got := run(t, &goalCmd{}, "-set", id, "-progress", "150"); got != subcommands.ExitSuccess {
		t.Fatalf("goal -set exited %v", got)
	}
	store, _ = OpenStore()
	if got := store.Goals()[0].Progress; got != 100 {
		t.Errorf("progress = %d, want clamped to 100", got)
	}
}

func TestBalanceScoreClamped(t *testing.T) {
	tempDataPath(t)

	store, _ := OpenStore()
	id := store.LifeAreas()[0].ID

	if got := run(t, &balanceCmd{}, "-set", id, "-score", "42"); got != subcommands.ExitSuccess {
		t.Fatalf("balance -set exited %v", got)
	}
	store, _ = OpenStore()
	if got := store.LifeAreas()[0].Score; got != 10 {
		t.Errorf("score = %d, want clamped to 10", got)
	}
}

func TestClearForceCommand(t *testing.T) {
	tempDataPath(t)

	run(t, &noteCmd{}, "-add", "-title", "scratch")
	run(t, &licenseCmd{}, "DEMO")
	if got := run(t, &clearCmd{}, "-f"); got != subcommands.ExitSuccess {
		t.Fatalf("clear -f exited %v", got)
	}

	store, _ := OpenStore()
	if len(store.Notes()) != 0 {
		t.Error("notes survived clear")
	}
	if store.LicenseKey() != "DEMO" {
		t.Error("license key did not survive clear")
	}
}
