package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dfalcao/modscout/internal/registry"
	"github.com/spf13/cobra"
)

var flagListCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered modules",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListCategory, "category", "", "Only show one category (ui, logic, data, integration)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	if flagListCategory != "" && !registry.ValidCategory(flagListCategory) {
		return fmt.Errorf("unknown category %q — expected one of: %s",
			flagListCategory, strings.Join(registry.Categories, ", "))
	}

	store, err := openRegistry()
	if err != nil {
		return err
	}

	mods := store.List(flagListCategory)
	if len(mods) == 0 {
		if flagListCategory != "" {
			printMiss("", fmt.Sprintf("no modules registered under %q", flagListCategory))
		} else {
			printMiss("", "registry is empty — run 'modscout sync' to register modules")
		}
		return nil
	}

	fmt.Printf("\nRegistered modules (%d):\n\n", len(mods))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tCATEGORY\tVERSION\tSTATUS\tEXPORTS\tDESCRIPTION")
	for i := range mods {
		m := &mods[i]
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%d\t%s\n",
			m.ID, m.Category, m.Version, m.Status, m.ExportCount(), truncate(m.Description, 60))
	}
	return w.Flush()
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
