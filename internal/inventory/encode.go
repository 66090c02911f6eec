package inventory

import "strings"

// Section headers in the snapshot file. The restorer keys on these
// exact markers, so they are shared between Serialize and Parse.
const (
	appsHeader     = "### macOS Installed Applications ###"
	formulaeHeader = "### Homebrew Formulae ###"
	casksHeader    = "### Homebrew Casks ###"
)

// Placeholder lines written when a group is empty. The parser skips
// them so an empty capture round-trips to an empty group.
const (
	noAppsPlaceholder     = "No applications found in /Applications or ~/Applications."
	noFormulaePlaceholder = "Homebrew not found or no formulae installed."
	noCasksPlaceholder    = "Homebrew not found or no casks installed."
)

// Serialize renders a snapshot in the flat text inventory format:
// a header line per category followed by one entry name per line.
// Sections are emitted in a fixed order (applications, formulae,
// casks), though Parse does not depend on that order.
func Serialize(s *Snapshot) string {
	var b strings.Builder

	writeSection(&b, appsHeader, s.Apps, noAppsPlaceholder)
	b.WriteString("\n")
	writeSection(&b, formulaeHeader, s.Formulae, noFormulaePlaceholder)
	b.WriteString("\n")
	writeSection(&b, casksHeader, s.Casks, noCasksPlaceholder)

	return b.String()
}

func writeSection(b *strings.Builder, header string, names []string, placeholder string) {
	b.WriteString(header)
	b.WriteString("\n")

	if len(names) == 0 {
		b.WriteString(placeholder)
		b.WriteString("\n")
		return
	}

	for _, name := range names {
		b.WriteString(name)
		b.WriteString("\n")
	}
}
