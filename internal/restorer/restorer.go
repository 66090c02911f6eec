// Package restorer replays a previously captured inventory snapshot
// onto the current machine: it diffs the snapshot against the live
// installed set, lets the user narrow the plan, installs what
// remains, and reports the applications that need manual installs.
package restorer

import (
	"fmt"
	"io"

	"macsnap/internal/brew"
	"macsnap/internal/installer"
	"macsnap/internal/inventory"
	"macsnap/internal/logger"
	"macsnap/internal/reconcile"
	"macsnap/internal/selection"
)

// Restorer runs the restore flow against an injected package-manager
// client and selection variant.
type Restorer struct {
	client   brew.Client
	selector selection.Selector
	out      io.Writer
}

// New creates a restorer. The selector is chosen once at startup by
// capability detection and injected here.
func New(client brew.Client, selector selection.Selector, out io.Writer) *Restorer {
	return &Restorer{client: client, selector: selector, out: out}
}

// Restore replays the snapshot file at path.
//
// Fatal conditions (returned as errors): the file is missing or
// unreadable, or the package manager is unavailable. Individual
// install failures are reported but do not make Restore fail, so the
// process still exits 0 after a partial restore.
func (r *Restorer) Restore(path string) error {
	fmt.Fprintf(r.out, "Parsing software list from %s\n", path)

	snap, err := inventory.Load(path)
	if err != nil {
		return err
	}

	plan, err := r.buildPlan(snap)
	if err != nil {
		return err
	}

	results, err := r.installPlan(plan)
	if err != nil {
		return err
	}

	r.report(results)
	r.reportManualApps(snap.Apps)

	fmt.Fprintln(r.out, "Restore process complete.")
	return nil
}

// buildPlan queries the live installed sets and diffs the snapshot
// against them. Any query failure is fatal: restore has no meaningful
// action without the package manager.
func (r *Restorer) buildPlan(snap *inventory.Snapshot) (*reconcile.Plan, error) {
	formulae, err := r.client.ListInstalled(inventory.Formula)
	if err != nil {
		return nil, fmt.Errorf("cannot query installed formulae: %w", err)
	}

	casks, err := r.client.ListInstalled(inventory.Cask)
	if err != nil {
		return nil, fmt.Errorf("cannot query installed casks: %w", err)
	}

	plan := reconcile.BuildPlan(snap, reconcile.ToSet(formulae), reconcile.ToSet(casks))

	skipped := len(snap.Formulae) + len(snap.Casks) - len(plan.Formulae) - len(plan.Casks)
	if skipped > 0 {
		fmt.Fprintf(r.out, "%d entries already installed, skipping.\n", skipped)
	}

	return plan, nil
}

// installPlan runs selection over the plan and installs the approved
// subset. An empty plan or an empty selection installs nothing.
func (r *Restorer) installPlan(plan *reconcile.Plan) ([]installer.Result, error) {
	if plan.IsEmpty() {
		fmt.Fprintln(r.out, "All formulae and casks from the snapshot are already installed.")
		return nil, nil
	}

	candidates := make([]inventory.Entry, 0, len(plan.Formulae)+len(plan.Casks))
	for _, name := range plan.Formulae {
		candidates = append(candidates, inventory.Entry{Category: inventory.Formula, Name: name})
	}
	for _, name := range plan.Casks {
		candidates = append(candidates, inventory.Entry{Category: inventory.Cask, Name: name})
	}

	approved, err := r.selector.Select(candidates)
	if err != nil {
		return nil, err
	}
	if len(approved) == 0 {
		fmt.Fprintln(r.out, "Nothing selected for installation.")
		return nil, nil
	}

	return installer.Run(r.client, approved, r.out)
}

// report summarizes the install outcomes. Failures are listed but do
// not fail the run.
func (r *Restorer) report(results []installer.Result) {
	if len(results) == 0 {
		return
	}

	var installed, present int
	for _, res := range results {
		switch res.Outcome {
		case installer.Installed:
			installed++
		case installer.AlreadyPresent:
			present++
		}
	}

	failures := installer.Failures(results)
	fmt.Fprintf(r.out, "\nInstalled %d of %d items", installed, len(results))
	if present > 0 {
		fmt.Fprintf(r.out, " (%d already present)", present)
	}
	fmt.Fprintln(r.out, ".")

	for _, res := range failures {
		logger.Error("Failed: %s %q: %v\n", res.Entry.Category, res.Entry.Name, res.Err)
	}
}

// reportManualApps prints the snapshot's application entries verbatim
// as a manual-action list; app bundles cannot be installed by brew.
func (r *Restorer) reportManualApps(apps []string) {
	if len(apps) == 0 {
		return
	}

	fmt.Fprintln(r.out, "\nManual installation required for the following applications")
	fmt.Fprintln(r.out, "(install them from the App Store or the developer's website):")
	for _, app := range apps {
		fmt.Fprintf(r.out, "  - %s\n", app)
	}
}
