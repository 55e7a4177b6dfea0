package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/registry"
	searchindex "github.com/dfalcao/modscout/internal/search/index"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show registry statistics, installed modules and index freshness",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	store, err := openRegistry()
	if err != nil {
		return err
	}
	st := store.ComputeStats()

	// ── Registry ──────────────────────────────────────────────────────────────
	printSection("Registry")
	fmt.Printf("\n  Document: %s\n", store.Path())
	fmt.Printf("  Updated:  %s\n", store.Updated())
	if st.LastSync != "" {
		fmt.Printf("  Last sync: %s\n", st.LastSync)
	} else {
		fmt.Printf("  Last sync: never — run 'modscout sync'\n")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\n  ui\t%d\n", st.UI)
	fmt.Fprintf(w, "  logic\t%d\n", st.Logic)
	fmt.Fprintf(w, "  data\t%d\n", st.Data)
	fmt.Fprintf(w, "  integration\t%d\n", st.Integration)
	fmt.Fprintf(w, "  total\t%d\n", st.TotalModules)
	_ = w.Flush()
	fmt.Printf("\n  Reusability score: %d/100\n", st.ReusabilityScore)

	// ── Installed modules ─────────────────────────────────────────────────────
	printSection("Installed modules")
	instPath, err := config.InstalledPath()
	if err != nil {
		return err
	}
	set, err := registry.LoadInstalled(instPath)
	if err != nil {
		return err
	}
	if len(set.Modules) == 0 {
		printMiss("", "none — run 'modscout install <id>' to track project usage")
	} else {
		fmt.Println()
		for _, im := range set.Modules {
			state := "inactive"
			if im.Active {
				state = "active"
			}
			msg := fmt.Sprintf("v%s at %s (%s)", im.Version, im.Path, state)
			if reg, err := store.Get(im.ID); err != nil {
				printWarn(im.ID, msg+" — no longer registered")
			} else if reg.Version != im.Version {
				printWarn(im.ID, msg+fmt.Sprintf(" — registry has v%s", reg.Version))
			} else {
				printOK(im.ID, msg)
			}
		}
	}

	// ── Search index ──────────────────────────────────────────────────────────
	printSection("Search index")
	idxPath, err := config.IndexPath()
	if err != nil {
		return err
	}
	idx, err := searchindex.Load(idxPath)
	switch {
	case errors.Is(err, searchindex.ErrNoIndex):
		printMiss("", "not built yet — the next 'modscout suggest' builds it lazily, or run 'modscout index'")
	case err != nil:
		printErr("", fmt.Sprintf("cache unreadable: %v — run 'modscout index --force'", err))
	case indexStale(store.Updated(), idx.BuiltAt):
		printWarn("", fmt.Sprintf("stale (built %s, registry updated %s) — run 'modscout index'", idx.BuiltAt, store.Updated()))
	default:
		printOK("", fmt.Sprintf("fresh (built %s, %d modules indexed)", idx.BuiltAt, len(idx.Modules)))
	}
	return nil
}
