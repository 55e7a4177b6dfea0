package cmd

import (
	"fmt"
	"strings"

	"github.com/dfalcao/modscout/internal/registry"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full manifest of a registered module",
	Long: `Display a formatted summary of one registered module: metadata, exported
symbols grouped by kind, and declared dependencies with their availability
in the registry.

The argument is a module id; when no exact match exists, a case-insensitive
substring match over all registered ids is tried.

Example:
  modscout show user-profile
  modscout show payment`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	store, err := openRegistry()
	if err != nil {
		return err
	}

	matches, err := resolveModules(store, args[0])
	if err != nil {
		return err
	}

	for i := range matches {
		if i > 0 {
			fmt.Println(strings.Repeat("─", 50))
		}
		printModule(store, &matches[i])
	}
	return nil
}

// resolveModules finds registered manifests matching arg: exact id first, then
// case-insensitive substring over all ids.
func resolveModules(store *registry.Store, arg string) ([]registry.ModuleManifest, error) {
	if m, err := store.Get(arg); err == nil {
		return []registry.ModuleManifest{*m}, nil
	}

	lower := strings.ToLower(arg)
	var matches []registry.ModuleManifest
	for _, m := range store.List("") {
		if strings.Contains(strings.ToLower(m.ID), lower) {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("module %q not found.\nTip: run 'modscout list' to see registered ids.", arg)
	}
	return matches, nil
}

// printModule displays the formatted detail view of one manifest.
func printModule(store *registry.Store, m *registry.ModuleManifest) {
	fmt.Printf("📦 Module: %s\n", m.ID)
	fmt.Printf("Name:      %s\n", m.Name)
	fmt.Printf("Version:   %s\n", m.Version)
	fmt.Printf("Category:  %s\n", m.Category)
	fmt.Printf("Status:    %s\n", m.Status)
	if m.Description != "" {
		fmt.Printf("Summary:   %s\n", strings.ReplaceAll(strings.TrimSpace(m.Description), "\n", " "))
	}
	if len(m.Keywords) > 0 {
		fmt.Printf("Keywords:  %s\n", strings.Join(m.Keywords, ", "))
	}

	printExportGroup("Components", m.Exports.Components)
	printExportGroup("Hooks", m.Exports.Hooks)
	printExportGroup("Services", m.Exports.Services)
	printExportGroup("Types", m.Exports.Types)
	printExportGroup("Utils", m.Exports.Utils)
	printExportGroup("Schemas", m.Exports.Schemas)
	printExportGroup("Stores", m.Exports.Stores)

	if len(m.Dependencies.Modules) > 0 || len(m.Dependencies.Packages) > 0 {
		fmt.Println("\nDependencies (declared):")
		for _, dep := range m.Dependencies.Modules {
			status := "✓ Registered"
			if _, err := store.Get(dep); err != nil {
				status = "✗ Not registered"
			}
			fmt.Printf("  module:  %-24s %s\n", dep, status)
		}
		for _, pkg := range m.Dependencies.Packages {
			fmt.Printf("  package: %s\n", pkg)
		}
	}

	if m.Path != "" {
		fmt.Printf("\nPath: %s\n", m.Path)
	}
}

func printExportGroup(title string, exports []registry.Export) {
	if len(exports) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, e := range exports {
		line := "  - " + e.Name
		if e.Path != "" {
			line += "  (" + e.Path + ")"
		}
		fmt.Println(line)
		if e.Description != "" {
			fmt.Printf("      %s\n", strings.TrimSpace(e.Description))
		}
	}
}
