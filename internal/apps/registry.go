// Package apps enumerates installed macOS application bundles.
package apps

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoAppDirs is returned when every candidate Applications
// directory failed to read, leaving nothing to enumerate.
var ErrNoAppDirs = errors.New("no application directory could be read")

// Registry lists installed application bundles from a fixed set of
// directories. It is read-only; macsnap never writes to the registry.
type Registry struct {
	dirs []string
}

// DefaultDirs returns the standard system-wide and user-scoped
// Applications directories.
func DefaultDirs() []string {
	dirs := []string{"/Applications"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Applications"))
	}
	return dirs
}

// NewRegistry creates a registry over the given directories. Extra
// directories from config are appended after the defaults.
func NewRegistry(dirs []string) *Registry {
	return &Registry{dirs: dirs}
}

// List returns the display names of all .app bundles visible in the
// registry's directories, deduplicated and sorted. A directory that
// does not exist is skipped; List fails only when no directory could
// be read at all.
func (r *Registry) List() ([]string, error) {
	seen := make(map[string]struct{})
	readable := 0

	for _, dir := range r.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		readable++

		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, ".app") {
				continue
			}
			seen[strings.TrimSuffix(name, ".app")] = struct{}{}
		}
	}

	if readable == 0 {
		return nil, ErrNoAppDirs
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
