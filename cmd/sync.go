package cmd

import (
	"fmt"
	"reflect"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/scanner"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan the modules tree and register every manifest found",
	Long: `Walk the configured modules tree (<modules_path>/<category>/<module-id>/),
parse each module.yaml / module.json / MODULE.md manifest and register it.

Already-registered modules whose manifest is unchanged are skipped; changed
manifests are re-registered. Invalid manifests are reported and left out of
the registry. Run 'modscout index' afterwards (or let the next suggestion
query rebuild the cache lazily).`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'modscout init' first.", err)
	}
	store, err := openRegistry()
	if err != nil {
		return err
	}

	res, err := scanner.Scan(cfg.ModulesPath, cfg.Excludes)
	if err != nil {
		return fmt.Errorf("cannot scan modules tree: %w", err)
	}

	var registered, unchanged []string
	for _, m := range res.Manifests {
		if prev, getErr := store.Get(m.ID); getErr == nil && reflect.DeepEqual(*prev, m) {
			unchanged = append(unchanged, m.ID)
			continue
		}
		if err := store.Register(m); err != nil {
			// Scanner output already validated; a failure here is unexpected.
			return fmt.Errorf("cannot register %s: %w", m.ID, err)
		}
		registered = append(registered, m.ID)
	}

	store.MarkSynced()
	if err := store.Save(); err != nil {
		return err
	}

	// ── Grouped report ────────────────────────────────────────────────────────
	printSection("Sync")

	if len(registered) > 0 {
		printBullet("Registered:")
		for _, id := range registered {
			printOK(id, "manifest registered")
		}
	}
	if len(unchanged) > 0 {
		printBullet("Unchanged:")
		for _, id := range unchanged {
			printSkip(id, "manifest identical, skipped")
		}
	}
	if len(res.Invalid) > 0 {
		printBullet("Invalid manifests (not registered):")
		for _, inv := range res.Invalid {
			printErr(inv.Path, inv.Err.Error())
		}
	}

	st := store.ComputeStats()
	fmt.Printf("\n  %d registered / %d unchanged / %d invalid  (registry total: %d modules)\n",
		len(registered), len(unchanged), len(res.Invalid), st.TotalModules)

	if len(res.Invalid) > 0 {
		return fmt.Errorf("%d manifest(s) were invalid; fix them and re-run 'modscout sync'", len(res.Invalid))
	}
	return nil
}
