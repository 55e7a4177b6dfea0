package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/registry"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the modscout home directory and an empty registry",
	Long: `Initialize modscout at ~/.modscout/ (or $MODSCOUT_HOME):

  - write a default modscout.yaml if none exists
  - create an empty registry.json and installed.json
  - create the modules/ tree with one directory per category
  - write an .env template for path overrides`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve the modscout home directory ────────────────────────────────
	dir, err := config.ModscoutDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("modscout directory ready: %s", dir))

	// ── 2. Write modscout.yaml if missing ─────────────────────────────────────
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// ── 3. Create the registry document if missing ────────────────────────────
	regPath, err := config.RegistryPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(regPath); os.IsNotExist(err) {
		if _, err := registry.Create(regPath); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Registry created: %s", regPath))
	} else {
		printSkip("", fmt.Sprintf("Registry already exists: %s", regPath))
	}

	// ── 4. Create the installed-modules document if missing ──────────────────
	instPath, err := config.InstalledPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(instPath); os.IsNotExist(err) {
		set := &registry.InstalledSet{Modules: []registry.InstalledModule{}}
		if err := registry.SaveInstalled(instPath, set); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Installed-modules document created: %s", instPath))
	} else {
		printSkip("", fmt.Sprintf("Installed-modules document already exists: %s", instPath))
	}

	// ── 5. Create the modules tree, one directory per category ───────────────
	for _, c := range registry.Categories {
		catDir := filepath.Join(cfg.ModulesPath, c)
		if err := os.MkdirAll(catDir, 0o755); err != nil {
			return fmt.Errorf("cannot create %s: %w", catDir, err)
		}
	}
	printOK("", fmt.Sprintf("Modules tree ready: %s", cfg.ModulesPath))

	// ── 6. Dotenv template for overrides ──────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}

	fmt.Println("\n✓  modscout init complete. Put modules under the modules tree and run 'modscout sync'.")
	return nil
}
