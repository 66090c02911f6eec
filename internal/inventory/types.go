// Package inventory defines the snapshot data model and its text
// serialization. A snapshot is the only durable artifact macsnap
// produces; everything else is rebuilt on every run.
package inventory

import (
	"fmt"
	"time"
)

// Category classifies a snapshot entry by its install source.
type Category string

const (
	// Application is a macOS app bundle found in an Applications directory.
	Application Category = "application"
	// Formula is a Homebrew command-line package.
	Formula Category = "formula"
	// Cask is a Homebrew-managed GUI application package.
	Cask Category = "cask"
)

// Label returns the human-readable label used in user-facing output.
func (c Category) Label() string {
	switch c {
	case Application:
		return "Application"
	case Formula:
		return "Formula"
	case Cask:
		return "Cask"
	}
	return string(c)
}

// Entry is one named software item in a snapshot.
type Entry struct {
	Category Category
	Name     string
}

// Snapshot is the captured list of installed software, grouped by
// category. Names within a group should be unique in emitted files,
// but consumers must tolerate duplicates from hand-edited inventories.
type Snapshot struct {
	Apps     []string
	Formulae []string
	Casks    []string
}

// IsEmpty reports whether the snapshot has no entries in any group.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Apps) == 0 && len(s.Formulae) == 0 && len(s.Casks) == 0
}

// Group returns the name list for the given category.
func (s *Snapshot) Group(c Category) []string {
	switch c {
	case Application:
		return s.Apps
	case Formula:
		return s.Formulae
	case Cask:
		return s.Casks
	}
	return nil
}

// Filename returns the snapshot filename for the given capture time:
// macos_installed_software_<YYYY-MM-DD_HH-MM-SS>.txt
func Filename(t time.Time) string {
	return fmt.Sprintf("macos_installed_software_%s.txt", t.Format("2006-01-02_15-04-05"))
}
