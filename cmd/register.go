package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfalcao/modscout/internal/registry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var registerCmd = &cobra.Command{
	Use:   "register <manifest-file>",
	Short: "Validate and register a single module manifest",
	Long: `Read a module manifest (YAML or JSON), validate it, and insert it into
the registry. Re-registering an existing id replaces the previous record.

Example:
  modscout register modules/ui/user-profile/module.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(_ *cobra.Command, args []string) error {
	path := args[0]
	m, err := readManifestFile(path)
	if err != nil {
		return err
	}

	store, err := openRegistry()
	if err != nil {
		return err
	}

	_, getErr := store.Get(m.ID)
	if err := store.Register(*m); err != nil {
		return fmt.Errorf("cannot register %s: %w", path, err)
	}
	if err := store.Save(); err != nil {
		return err
	}

	if getErr == nil {
		printInfo(m.ID, fmt.Sprintf("re-registered (category %s, version %s)", m.Category, m.Version))
	} else {
		printOK(m.ID, fmt.Sprintf("registered (category %s, version %s)", m.Category, m.Version))
	}
	fmt.Println("\n  Run 'modscout index' to refresh the search cache.")
	return nil
}

// readManifestFile parses a standalone manifest file, choosing the decoder by
// extension: .json strict JSON, everything else YAML.
func readManifestFile(path string) (*registry.ModuleManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", path, err)
	}

	var m registry.ModuleManifest
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}
	return &m, nil
}
