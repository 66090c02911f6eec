// Package indexer captures the installed-software inventory and
// writes it to a timestamped snapshot file.
package indexer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"macsnap/internal/brew"
	"macsnap/internal/inventory"
	"macsnap/internal/logger"
)

// AppLister enumerates installed application names. Satisfied by
// *apps.Registry and faked in tests.
type AppLister interface {
	List() ([]string, error)
}

// Capture builds a snapshot from the application registry and the
// package manager. The capture time is passed in by the caller so
// Capture stays pure with respect to the clock.
//
// Failure policy: a registry failure is fatal (index mode has nothing
// to report without it), while a brew failure degrades to empty
// formula/cask groups so application listing still succeeds on
// machines without Homebrew.
func Capture(registry AppLister, client brew.Client) (*inventory.Snapshot, error) {
	appNames, err := registry.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	snap := &inventory.Snapshot{Apps: appNames}
	snap.Formulae = listOrEmpty(client, inventory.Formula)
	snap.Casks = listOrEmpty(client, inventory.Cask)

	return snap, nil
}

// listOrEmpty queries one brew category, degrading to an empty group
// with a warning on any failure.
func listOrEmpty(client brew.Client, category inventory.Category) []string {
	names, err := client.ListInstalled(category)
	if err != nil {
		if errors.Is(err, brew.ErrUnavailable) {
			logger.Warn("Homebrew not found; %s list will be empty.\n", category)
		} else {
			logger.Warn("Failed to list installed %s entries: %v\n", category, err)
		}
		return nil
	}

	sort.Strings(names)
	return names
}

// Write serializes the snapshot to dir under the timestamped filename
// convention. An existing file is never overwritten: two captures in
// the same second get disambiguated with a numeric suffix.
func Write(snap *inventory.Snapshot, dir string, capturedAt time.Time) (string, error) {
	name := inventory.Filename(capturedAt)
	path := filepath.Join(dir, name)

	for n := 2; ; n++ {
		err := writeExclusive(path, inventory.Serialize(snap))
		if err == nil {
			return path, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("failed to write snapshot file: %w", err)
		}

		ext := filepath.Ext(name)
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", name[:len(name)-len(ext)], n, ext))
	}
}

// writeExclusive writes content to path, failing with os.IsExist if
// the file already exists.
func writeExclusive(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
