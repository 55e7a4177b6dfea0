package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfalcao/modscout/internal/search"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Classify a source file and find registered modules covering it",
	Long: `Detect what kind of artifact a source file is (component, hook, service,
schema or migration) from its name and content markers, then query the
registry for existing modules that already cover the same ground.

Example:
  modscout analyze src/components/UserProfile.tsx`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	kind, markers := search.DetectKind(path, string(data))

	printSection("File analysis")
	fmt.Printf("\n  File: %s\n", path)
	fmt.Printf("  Kind: %s\n", kind)
	if len(markers) > 0 {
		fmt.Printf("  Markers: %s\n", strings.Join(markers, ", "))
	}
	if kind == search.KindUnknown {
		printMiss("", "no recognizable markers — skipping registry lookup")
		return nil
	}

	idx, err := loadSearchIndex()
	if err != nil {
		return err
	}

	// The filename stem plus the detected kind make a reasonable context query:
	// "UserProfile.tsx" → "userprofile component".
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s := search.Suggest(idx, stem+" "+kind, 0)

	if len(s.Recommendations) == 0 {
		printMiss("", "nothing similar is registered — this looks like new ground")
		return nil
	}

	printBullet("Possibly overlapping modules:")
	for _, r := range s.Recommendations {
		printWarn(r.Module, fmt.Sprintf("%s %q (%d%%) — %s", r.Type, r.Name, r.Relevance, r.UsageSnippet))
	}
	fmt.Println("\n  Review these before writing new code; prefer reusing a registered module.")
	return nil
}
