package cmd

import (
	"fmt"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/registry"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <id>",
	Short: "Remove a module from the installed-modules document",
	Args:  cobra.ExactArgs(1),
	RunE:  runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(_ *cobra.Command, args []string) error {
	id := args[0]

	instPath, err := config.InstalledPath()
	if err != nil {
		return err
	}
	set, err := registry.LoadInstalled(instPath)
	if err != nil {
		return err
	}
	if err := set.Remove(id); err != nil {
		return fmt.Errorf("cannot uninstall %s: %w\nTip: run 'modscout status' to see installed modules.", id, err)
	}
	if err := registry.SaveInstalled(instPath, set); err != nil {
		return err
	}

	printOK(id, "installation record removed (the registry entry is kept)")
	return nil
}
