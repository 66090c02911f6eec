package output

import (
	"fmt"
	"strings"

	"macsnap/internal/inventory"
)

// RenderSnapshotSummary renders per-category entry counts for a
// freshly captured snapshot.
func RenderSnapshotSummary(snap *inventory.Snapshot) string {
	rows := []struct {
		label string
		count int
	}{
		{"Applications", len(snap.Apps)},
		{"Homebrew formulae", len(snap.Formulae)},
		{"Homebrew casks", len(snap.Casks)},
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s %s\n", "Category", "Entries"))
	sb.WriteString(strings.Repeat("─", 28))
	sb.WriteString("\n")

	total := 0
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-20s %7d\n", row.label, row.count))
		total += row.count
	}

	sb.WriteString(strings.Repeat("─", 28))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-20s %7d\n", "Total", total))

	return sb.String()
}
