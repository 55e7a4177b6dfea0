package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/search"
	"github.com/spf13/cobra"
)

var (
	flagSuggestLimit int
	flagSuggestJSON  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <context...>",
	Short: "Suggest registered modules matching a free-text context",
	Long: `Extract keywords from the given context (Portuguese or English), score
every registered module and exported symbol against them, and print the top
matches ranked by relevance.

Example:
  modscout suggest criar componente de perfil de usuario
  modscout suggest payment checkout form --limit 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&flagSuggestLimit, "limit", 0, "Maximum number of recommendations (capped at 10)")
	suggestCmd.Flags().BoolVar(&flagSuggestJSON, "json", false, "Print the raw suggestion as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	limit := flagSuggestLimit
	if !cmd.Flags().Changed("limit") {
		if cfg, err := config.Load(); err == nil {
			limit = cfg.SuggestLimit
		}
	}

	idx, err := loadSearchIndex()
	if err != nil {
		return err
	}

	s := search.Suggest(idx, strings.Join(args, " "), limit)

	if flagSuggestJSON {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot marshal suggestion: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printSuggestion(s)
	return nil
}

// printSuggestion renders one suggestion in the human-readable layout shared
// by suggest and task.
func printSuggestion(s search.Suggestion) {
	fmt.Printf("\nmodscout suggest %q\n", s.Context)

	fmt.Printf("\nDetected category: %s", s.DetectedCategory)
	if s.Confidence > 0 {
		fmt.Printf("  (confidence %.0f%%)", s.Confidence*100)
	}
	fmt.Println()

	if len(s.Keywords.Domains) > 0 {
		fmt.Printf("Domain terms:      %s\n", strings.Join(s.Keywords.Domains, ", "))
	}
	if len(s.Keywords.Actions) > 0 {
		actions := make([]string, 0, len(s.Keywords.Actions))
		for _, a := range s.Keywords.Actions {
			actions = append(actions, a.Action)
		}
		fmt.Printf("Actions:           %s\n", strings.Join(actions, ", "))
	}

	fmt.Printf("\nRecommendations (%d found):\n", len(s.Recommendations))
	if len(s.Recommendations) == 0 {
		printMiss("", "no registered module matches this context")
		fmt.Println("\n  Tip: run 'modscout list' to see what is registered, or 'modscout sync' to pick up new modules.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, r := range s.Recommendations {
		fmt.Fprintf(w, "  %d.\t[%3d%%]\t%s\t%s\t(%s/%s)\n", i+1, r.Relevance, r.Type, r.Name, r.Category, r.Module)
		if r.Description != "" {
			fmt.Fprintf(w, "  \t\t\t- %s\n", strings.TrimSpace(r.Description))
		}
		fmt.Fprintf(w, "  \t\t\t- %s\n", r.UsageSnippet)
	}
	_ = w.Flush()
}
