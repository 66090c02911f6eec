package app

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"macsnap/internal/apps"
	"macsnap/internal/brew"
	"macsnap/internal/indexer"
	"macsnap/internal/output"
)

// runIndex captures the installed-software inventory and writes the
// timestamped snapshot file. The application registry must be
// readable; a missing Homebrew only empties the formula/cask groups.
func runIndex() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry := apps.NewRegistry(append(apps.DefaultDirs(), cfg.AppDirs...))
	client := brew.NewExecClient()

	var spinner *output.Spinner
	if isatty.IsTerminal(os.Stdout.Fd()) {
		spinner = output.NewSpinner("Scanning installed software...")
		spinner.Start()
	} else {
		fmt.Println("Scanning installed software...")
	}

	snap, err := indexer.Capture(registry, client)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	dir := flagDir
	if dir == "" {
		dir = cfg.SnapshotDir
	}
	if dir == "" {
		dir = "."
	}

	path, err := indexer.Write(snap, dir, time.Now())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(output.RenderSnapshotSummary(snap))
	fmt.Printf("\nReport saved to: %s\n", path)

	return nil
}
