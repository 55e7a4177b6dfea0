package cmd

import (
	"fmt"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/registry"
	"github.com/spf13/cobra"
)

var flagInstallPath string

var installCmd = &cobra.Command{
	Use:   "install <id>",
	Short: "Mark a registered module as installed in the current project",
	Long: `Record a registered module in the installed-modules document. The entry
tracks the registered version and the project path the module was copied to,
so 'modscout status' can report what the project is actually using.

Example:
  modscout install user-profile --path src/modules/user-profile`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&flagInstallPath, "path", "", "Project path the module lives at (defaults to the manifest path)")
	rootCmd.AddCommand(installCmd)
}

func runInstall(_ *cobra.Command, args []string) error {
	id := args[0]

	store, err := openRegistry()
	if err != nil {
		return err
	}
	m, err := store.Get(id)
	if err != nil {
		return fmt.Errorf("cannot install %s: %w\nTip: run 'modscout list' to see registered ids.", id, err)
	}

	instPath, err := config.InstalledPath()
	if err != nil {
		return err
	}
	set, err := registry.LoadInstalled(instPath)
	if err != nil {
		return err
	}

	path := flagInstallPath
	if path == "" {
		path = m.Path
	}

	replaced := set.Find(id) != nil
	set.Add(registry.InstalledModule{
		ID:      id,
		Version: m.Version,
		Path:    path,
		Active:  true,
	})
	if err := registry.SaveInstalled(instPath, set); err != nil {
		return err
	}

	if replaced {
		printInfo(id, fmt.Sprintf("installation record updated (version %s, path %s)", m.Version, path))
	} else {
		printOK(id, fmt.Sprintf("marked installed (version %s, path %s)", m.Version, path))
	}
	return nil
}
