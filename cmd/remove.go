package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a module from the registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	id := args[0]

	store, err := openRegistry()
	if err != nil {
		return err
	}
	if err := store.Remove(id); err != nil {
		return fmt.Errorf("cannot remove %s: %w\nTip: run 'modscout list' to see registered ids.", id, err)
	}
	if err := store.Save(); err != nil {
		return err
	}

	printOK(id, "removed from the registry")
	fmt.Println("\n  Run 'modscout index' to refresh the search cache.")
	return nil
}
