package app

import (
	"os"

	"macsnap/internal/brew"
	"macsnap/internal/restorer"
	"macsnap/internal/selection"
)

// runRestore replays the inventory file at path. Capability detection
// for the selection dialog happens here, once, and the resulting
// selector is injected into the restorer.
func runRestore(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	noInput := flagNoInput || cfg.UI == "never"
	selector := selection.Detect(noInput)

	r := restorer.New(brew.NewExecClient(), selector, os.Stdout)
	return r.Restore(path)
}
