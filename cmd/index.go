package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dfalcao/modscout/internal/config"
	searchindex "github.com/dfalcao/modscout/internal/search/index"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

var flagIndexForce bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the search index cache from the registry",
	Long: `Derive the query-optimized search index from the registry document and
install it atomically at ~/.modscout/cache/search_index.json.

The rebuild runs under a file lock so concurrent modscout processes never
write the cache at the same time. Without --force the rebuild is skipped
when the cache is already newer than the registry.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&flagIndexForce, "force", false, "Rebuild even if the cache is up to date")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(_ *cobra.Command, _ []string) error {
	store, err := openRegistry()
	if err != nil {
		return err
	}
	idxPath, err := config.IndexPath()
	if err != nil {
		return err
	}
	lockPath, err := config.IndexLockPath()
	if err != nil {
		return err
	}

	if !flagIndexForce {
		if idx, loadErr := searchindex.Load(idxPath); loadErr == nil && !indexStale(store.Updated(), idx.BuiltAt) {
			printSkip("", fmt.Sprintf("index is up to date (built %s) — use --force to rebuild", idx.BuiltAt))
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return fmt.Errorf("cannot create cache dir: %w", err)
	}

	l := flock.New(lockPath)
	deadline := time.Now().Add(10 * time.Second)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return fmt.Errorf("cannot acquire index lock: %w", err)
		}
		if locked {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("another modscout process is rebuilding the index (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
	defer func() { _ = l.Unlock() }()

	idx := searchindex.Build(store)
	if err := searchindex.Write(idxPath, idx); err != nil {
		return fmt.Errorf("cannot install index: %w", err)
	}

	printOK("", fmt.Sprintf("search index written: %s", idxPath))
	fmt.Printf("\n  %d modules / %d components / %d hooks / %d services indexed\n",
		len(idx.Modules), len(idx.Components), len(idx.Hooks), len(idx.Services))

	if len(idx.Skipped) > 0 {
		printBullet("Skipped (invalid manifests):")
		for _, id := range idx.Skipped {
			printWarn(id, "failed validation, left out of the index")
		}
	}
	return nil
}

// indexStale reports whether the registry was updated after the index was
// built. Both timestamps are RFC 3339; unparseable values count as stale.
func indexStale(registryUpdated, indexBuiltAt string) bool {
	ru, err1 := time.Parse(time.RFC3339, registryUpdated)
	ib, err2 := time.Parse(time.RFC3339, indexBuiltAt)
	if err1 != nil || err2 != nil {
		return true
	}
	return ru.After(ib)
}
