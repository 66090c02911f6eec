// Package brew wraps the Homebrew command-line interface behind a
// narrow client so restore logic can be tested against an in-memory
// fake.
package brew

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"macsnap/internal/inventory"
)

// ErrUnavailable indicates the brew binary is not installed or not on
// PATH. The restorer treats this as fatal; the indexer degrades to
// empty formula/cask groups.
var ErrUnavailable = errors.New("brew is not installed or not on PATH")

// Client is the package-manager surface macsnap depends on:
// list-installed per category and install by name.
type Client interface {
	// ListInstalled returns the names of installed formulae or casks.
	ListInstalled(category inventory.Category) ([]string, error)
	// Install installs a single formula or cask by exact name.
	Install(category inventory.Category, name string) error
}

// ExecClient invokes the real brew binary. Every call is a blocking
// external-process invocation with no timeout; entries are installed
// one at a time by the caller.
type ExecClient struct{}

// NewExecClient returns a client backed by the brew CLI.
func NewExecClient() *ExecClient {
	return &ExecClient{}
}

// ListInstalled runs `brew list --formula` or `brew list --cask` and
// parses the line-oriented output.
func (c *ExecClient) ListInstalled(category inventory.Category) ([]string, error) {
	cmd := exec.Command("brew", "list", listFlag(category))
	output, err := cmd.Output()
	if err != nil {
		return nil, wrapBrewError(fmt.Sprintf("brew list %s", listFlag(category)), err)
	}

	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return nil, nil
	}

	var names []string
	for _, line := range strings.Split(trimmed, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}

// Install runs `brew install <name>`, adding --cask for casks. Output
// is captured and folded into the error on failure; brew itself is
// idempotent, so reinstalling an installed package is a no-op.
func (c *ExecClient) Install(category inventory.Category, name string) error {
	args := []string{"install"}
	if category == inventory.Cask {
		args = append(args, "--cask")
	}
	args = append(args, name)

	cmd := exec.Command("brew", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if isNotFound(err) {
			return ErrUnavailable
		}
		return fmt.Errorf("brew install %s failed: %w (output: %s)", name, err, strings.TrimSpace(string(output)))
	}

	return nil
}

func listFlag(category inventory.Category) string {
	if category == inventory.Cask {
		return "--cask"
	}
	return "--formula"
}

// wrapBrewError distinguishes a missing brew binary from a failed
// invocation, preserving stderr for the latter.
func wrapBrewError(what string, err error) error {
	if isNotFound(err) {
		return ErrUnavailable
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return fmt.Errorf("%s failed: %w (stderr: %s)", what, err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return fmt.Errorf("%s failed: %w", what, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
