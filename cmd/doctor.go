package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/registry"
	searchindex "github.com/dfalcao/modscout/internal/search/index"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight environment checks",
	Long: `Check that modscout's home directory, config, registry and search index
cache are in a healthy state. Run this command when something seems wrong,
or before filing a bug report.`,
	RunE: runDoctor,
}

var doctorFixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Automatically fix detected issues",
	Long: `Fix detected issues in the modscout environment.

Currently fixes:
  - Leftover cache files: deletes stale .bak and lock files from the cache dir

Run 'modscout doctor' first to see what will be fixed.`,
	RunE: runDoctorFix,
}

func init() {
	doctorCmd.AddCommand(doctorFixCmd)
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("modscout doctor")
	fmt.Println()

	// ── Check 1: home directory exists ────────────────────────────────────────
	fmt.Println("[ Home directory ]")
	dir, err := config.ModscoutDir()
	if err != nil {
		failD("cannot determine home directory: %v", err)
	} else if _, err := os.Stat(dir); os.IsNotExist(err) {
		failD("%s not found — run 'modscout init' first", dir)
	} else {
		printOK("", fmt.Sprintf("exists: %s", dir))
	}
	fmt.Println()

	// ── Check 2: modscout.yaml is valid ───────────────────────────────────────
	fmt.Println("[ modscout.yaml ]")
	cfg, loadErr := config.Load()
	if loadErr != nil {
		failD("cannot parse modscout.yaml: %v", loadErr)
	} else {
		printOK("", fmt.Sprintf("valid YAML — modules path: %s", cfg.ModulesPath))
		if _, err := os.Stat(cfg.ModulesPath); os.IsNotExist(err) {
			printWarn("", fmt.Sprintf("modules path does not exist yet: %s", cfg.ModulesPath))
		}
	}
	fmt.Println()

	// ── Check 3: registry readable + grouping invariant ───────────────────────
	fmt.Println("[ Registry ]")
	regPath, _ := config.RegistryPath()
	store, regErr := registry.Open(regPath)
	if regErr != nil {
		failD("registry unreadable: %v — run 'modscout init'", regErr)
	} else {
		groupingOK := true
		for _, c := range registry.Categories {
			for _, m := range store.List(c) {
				if m.Category != c {
					failD("[%s] stored under %q but declares category %q", m.ID, c, m.Category)
					groupingOK = false
				}
				if verr := registry.Validate(&m); verr != nil {
					printWarn(m.ID, fmt.Sprintf("registered record no longer validates: %v", verr))
				}
			}
		}
		if groupingOK {
			st := store.ComputeStats()
			printOK("", fmt.Sprintf("%d module(s), category grouping consistent", st.TotalModules))
		}
	}
	fmt.Println()

	// ── Check 4: search index cache ───────────────────────────────────────────
	fmt.Println("[ Search index ]")
	idxPath, _ := config.IndexPath()
	idx, idxErr := searchindex.Load(idxPath)
	switch {
	case errors.Is(idxErr, searchindex.ErrNoIndex):
		printSkip("", "not built yet (built lazily on first suggestion)")
	case idxErr != nil:
		failD("cache unreadable: %v — run 'modscout index --force'", idxErr)
	case regErr == nil && indexStale(store.Updated(), idx.BuiltAt):
		printWarn("", "stale — run 'modscout index'")
	default:
		printOK("", fmt.Sprintf("fresh (built %s)", idx.BuiltAt))
	}
	fmt.Println()

	// ── Check 5: leftover cache files ─────────────────────────────────────────
	fmt.Println("[ Leftover cache files ]")
	leftovers := findCacheLeftovers()
	if len(leftovers) == 0 {
		printOK("", "no stale .bak or lock files")
	} else {
		for _, f := range leftovers {
			printWarn("", f)
		}
		fmt.Printf("\n  ⚠  %d leftover file(s) in the cache dir. Run 'modscout doctor fix' to remove them.\n", len(leftovers))
		allOK = false
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. modscout is ready to use.")
	} else {
		fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

func runDoctorFix(_ *cobra.Command, _ []string) error {
	printSection("modscout doctor fix")

	fmt.Println("\n[ Leftover cache files ]")
	leftovers := findCacheLeftovers()
	if len(leftovers) == 0 {
		printOK("", "no leftover files found — nothing to fix")
		return nil
	}

	var failed int
	for _, f := range leftovers {
		if err := cleanupBackup(f); err != nil {
			printErr("", fmt.Sprintf("cannot delete %s: %v", f, err))
			failed++
		} else {
			printOK("", fmt.Sprintf("deleted %s", f))
		}
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be deleted", failed)
	}
	fmt.Printf("  ✓  %d leftover file(s) removed.\n", len(leftovers))
	return nil
}

// findCacheLeftovers lists stale .bak and lock files in the cache directory.
// The lock file is only a leftover when no rebuild is running; deleting it is
// safe because flock state lives in the kernel, not the file content.
func findCacheLeftovers() []string {
	idxPath, err := config.IndexPath()
	if err != nil {
		return nil
	}
	cacheDir := filepath.Dir(idxPath)

	var found []string
	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".bak" || ext == ".lock" {
			found = append(found, filepath.Join(cacheDir, e.Name()))
		}
	}
	return found
}
