// Package installer drives the package manager over an approved set
// of restore candidates, collecting a per-entry outcome for each.
package installer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"macsnap/internal/brew"
	"macsnap/internal/inventory"
)

// Outcome is the result of one install attempt.
type Outcome int

const (
	// Installed means the package manager completed the install.
	Installed Outcome = iota
	// AlreadyPresent means the entry was installed before this run.
	// Reconciliation should have excluded it, but redundant
	// invocation is tolerated and treated as success.
	AlreadyPresent
	// Failed means the install command returned an error.
	Failed
)

// String returns the outcome label used in reports.
func (o Outcome) String() string {
	switch o {
	case Installed:
		return "installed"
	case AlreadyPresent:
		return "already present"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Result records the outcome for a single entry. Err is set only
// when Outcome is Failed.
type Result struct {
	Entry   inventory.Entry
	Outcome Outcome
	Err     error
}

// Run installs every candidate sequentially, one blocking brew call
// at a time. A failed entry is recorded and the batch continues; the
// only abort condition is the package manager disappearing mid-run
// (brew.ErrUnavailable), which would fail every remaining entry too.
func Run(client brew.Client, entries []inventory.Entry, out io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(entries))

	for _, entry := range entries {
		fmt.Fprintf(out, "Installing %s %q...\n", strings.ToLower(entry.Category.Label()), entry.Name)

		err := client.Install(entry.Category, entry.Name)
		switch {
		case err == nil:
			results = append(results, Result{Entry: entry, Outcome: Installed})
		case errors.Is(err, brew.ErrUnavailable):
			results = append(results, Result{Entry: entry, Outcome: Failed, Err: err})
			return results, brew.ErrUnavailable
		case isAlreadyInstalled(err):
			results = append(results, Result{Entry: entry, Outcome: AlreadyPresent})
		default:
			fmt.Fprintf(out, "  > Failed to install %q: %v. Continuing...\n", entry.Name, err)
			results = append(results, Result{Entry: entry, Outcome: Failed, Err: err})
		}
	}

	return results, nil
}

// Failures returns the subset of results that failed.
func Failures(results []Result) []Result {
	var failed []Result
	for _, res := range results {
		if res.Outcome == Failed {
			failed = append(failed, res)
		}
	}
	return failed
}

// isAlreadyInstalled matches brew's complaint about reinstalling an
// installed package, which we treat as success.
func isAlreadyInstalled(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already installed")
}
