// Package selection lets the user approve a subset of the restore
// plan before installation. Two variants satisfy the same contract:
// an interactive checklist when a terminal is available, and a
// pass-through fallback that approves everything.
package selection

import (
	"os"

	"github.com/mattn/go-isatty"

	"macsnap/internal/inventory"
	"macsnap/internal/logger"
)

// Selector narrows a candidate list to the approved subset.
// Candidates carry their category so formulae and casks can be
// presented together in one dialog. A cancelled interactive session
// returns an empty selection, never an error.
type Selector interface {
	Select(candidates []inventory.Entry) ([]inventory.Entry, error)
}

// Passthrough approves every candidate unchanged. It is used when no
// interactive terminal is available and must never block or fail.
type Passthrough struct{}

// Select returns the full candidate set and emits a notice that no
// selection was offered.
func (Passthrough) Select(candidates []inventory.Entry) ([]inventory.Entry, error) {
	if len(candidates) > 0 {
		logger.Warn("No interactive terminal available; installing all %d items without selection.\n", len(candidates))
	}
	return candidates, nil
}

// Detect chooses the selector variant once at startup. The checklist
// requires stdin and stdout to both be terminals; noInput forces the
// pass-through fallback regardless.
func Detect(noInput bool) Selector {
	if noInput {
		return Passthrough{}
	}
	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		return &Checklist{}
	}
	return Passthrough{}
}
