// Package reconcile computes which snapshot entries are not yet
// installed on the current system.
package reconcile

import (
	"macsnap/internal/inventory"
)

// Plan is the set of formula and cask names a restore still needs to
// install. It is built from a snapshot and the live installed sets,
// consumed immediately, and never persisted.
type Plan struct {
	Formulae []string
	Casks    []string
}

// IsEmpty reports whether nothing remains to install.
func (p *Plan) IsEmpty() bool {
	return len(p.Formulae) == 0 && len(p.Casks) == 0
}

// Missing returns the names in wanted that are absent from installed,
// preserving wanted's order. Matching is exact and case-sensitive:
// package names are opaque atomic identifiers with no normalization.
// Duplicates in wanted (hand-edited inventories) collapse to one.
func Missing(wanted []string, installed map[string]struct{}) []string {
	var missing []string
	seen := make(map[string]struct{}, len(wanted))

	for _, name := range wanted {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := installed[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

// BuildPlan diffs a snapshot's formula and cask groups against the
// live installed sets, independently per category.
func BuildPlan(snap *inventory.Snapshot, formulae, casks map[string]struct{}) *Plan {
	return &Plan{
		Formulae: Missing(snap.Formulae, formulae),
		Casks:    Missing(snap.Casks, casks),
	}
}

// ToSet converts a name list to a membership set.
func ToSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
