// Package app wires the macsnap command-line interface.
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"macsnap/internal/config"
	"macsnap/internal/logger"
)

var (
	flagIndex   bool
	flagRestore string
	flagDir     string
	flagNoInput bool
	flagDebug   bool

	// RootCmd is the single macsnap entry point. Index mode is the
	// default; --restore switches to restore mode. The two flags are
	// mutually exclusive and macsnap never runs both flows together.
	RootCmd = &cobra.Command{
		Use:   "macsnap",
		Short: "Inventory installed macOS software and restore it on a clean machine",
		Long: `macsnap captures the set of installed software on a macOS machine
(applications plus Homebrew formulae and casks) into a flat text
inventory file, and later replays that inventory on a clean machine.

Index mode (the default) writes a timestamped inventory file to the
current directory. Restore mode parses an inventory file, skips what
is already installed, optionally lets you deselect items, installs
the rest via Homebrew, and lists the applications that have to be
installed by hand.

Examples:
  # Capture the installed software set
  macsnap

  # Same, explicitly
  macsnap --index

  # Replay a captured inventory
  macsnap --restore macos_installed_software_2026-08-27_10-00-00.txt

  # Replay without the interactive selection dialog
  macsnap --restore inventory.txt --no-input`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q; run 'macsnap --help' for usage", args[0])
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagRestore != "" {
				return runRestore(flagRestore)
			}
			return runIndex()
		},
	}
)

func init() {
	RootCmd.Flags().BoolVar(&flagIndex, "index", false, "scan the system and write the inventory file (default mode)")
	RootCmd.Flags().StringVar(&flagRestore, "restore", "", "parse the given inventory file and reinstall the software")
	RootCmd.Flags().StringVar(&flagDir, "dir", "", "directory for the inventory file (default: current directory)")
	RootCmd.Flags().BoolVar(&flagNoInput, "no-input", false, "skip the interactive selection dialog and install everything")
	RootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	RootCmd.MarkFlagsMutuallyExclusive("index", "restore")

	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w; run 'macsnap --help' for usage", err)
	})

	RootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.Init(flagDebug)
	}
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the optional user config, falling back to defaults
// when the config directory cannot be resolved.
func loadConfig() (*config.Config, error) {
	dir, err := config.Dir()
	if err != nil {
		logger.Debug("cannot resolve config directory: %v\n", err)
		return &config.Config{UI: "auto"}, nil
	}
	return config.Load(dir)
}
