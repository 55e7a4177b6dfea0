package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/registry"
	searchindex "github.com/dfalcao/modscout/internal/search/index"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "modscout",
	Short:        "modscout — module registry and discovery for AI coding assistants",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `modscout keeps a local registry of reusable feature modules and answers
"what existing module fits this task" queries, so an AI assistant reuses
generated code instead of rewriting it.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRegistry opens the registry document, translating a missing or
// unreadable document into the user-facing remediation message.
func openRegistry() (*registry.Store, error) {
	path, err := config.RegistryPath()
	if err != nil {
		return nil, err
	}
	store, err := registry.Open(path)
	if err != nil {
		if errors.Is(err, registry.ErrRegistryUnavailable) {
			return nil, fmt.Errorf("%w\nRun 'modscout init' to create the registry, then 'modscout sync' to populate it.", err)
		}
		return nil, err
	}
	return store, nil
}

// loadSearchIndex returns the cached search index, building it lazily from the
// registry when no cache exists yet.
func loadSearchIndex() (*searchindex.Index, error) {
	store, err := openRegistry()
	if err != nil {
		return nil, err
	}
	path, err := config.IndexPath()
	if err != nil {
		return nil, err
	}
	idx, err := searchindex.LoadOrBuild(path, store)
	if err != nil {
		return nil, fmt.Errorf("cannot load search index: %w\nRun 'modscout index --force' to rebuild it.", err)
	}
	return idx, nil
}
