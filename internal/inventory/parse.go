package inventory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a snapshot from the flat text inventory format.
//
// The format is deliberately forgiving of partial or hand-edited
// files: an unrecognized "###" section header is skipped along with
// its lines, a missing section yields an empty group, and blank or
// placeholder lines are ignored. Parse only fails when the reader
// itself fails.
func Parse(r io.Reader) (*Snapshot, error) {
	snap := &Snapshot{}

	// current points at the active group, or nil while inside an
	// unrecognized section (those lines are dropped).
	var current *[]string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "###") {
			switch {
			case strings.Contains(line, "macOS Installed Applications"):
				current = &snap.Apps
			case strings.Contains(line, "Homebrew Formulae"):
				current = &snap.Formulae
			case strings.Contains(line, "Homebrew Casks"):
				current = &snap.Casks
			default:
				current = nil
			}
			continue
		}

		if current == nil {
			continue
		}

		// Skip the placeholder lines an empty capture writes.
		if strings.HasPrefix(line, "No ") || strings.HasPrefix(line, "Homebrew not found") {
			continue
		}

		*current = append(*current, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	return snap, nil
}

// Load parses the snapshot file at path. A missing or unreadable
// file is fatal; malformed content is handled per Parse's tolerance.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
