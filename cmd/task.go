package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dfalcao/modscout/internal/config"
	"github.com/dfalcao/modscout/internal/search"
	"github.com/spf13/cobra"
)

var flagTaskJSON bool

var taskCmd = &cobra.Command{
	Use:   "task <description...>",
	Short: "Analyze a task description and decide: reuse, extend or create",
	Long: `Run the suggestion engine over a natural-language task description and
apply the decision policy on the best match:

  relevance ≥ 80%   reuse the existing module
  relevance 60–79%  consider extending it
  relevance < 60%   create a new module in the detected category

Example:
  modscout task "adicionar busca de produtos na pagina inicial"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTask,
}

func init() {
	taskCmd.Flags().BoolVar(&flagTaskJSON, "json", false, "Print the raw analysis as JSON")
	rootCmd.AddCommand(taskCmd)
}

func runTask(_ *cobra.Command, args []string) error {
	limit := 0
	if cfg, err := config.Load(); err == nil {
		limit = cfg.SuggestLimit
	}

	idx, err := loadSearchIndex()
	if err != nil {
		return err
	}

	a := search.SuggestFromTask(idx, strings.Join(args, " "), limit)

	if flagTaskJSON {
		out, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot marshal analysis: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printSuggestion(a.Suggestion)

	printSection("Decision")
	switch a.Decision {
	case search.DecisionReuse:
		printOK("", a.Reason)
	case search.DecisionExtend:
		printWarn("", a.Reason)
	default:
		printInfo("", a.Reason)
		if a.TargetCategory != "" && a.TargetCategory != "unknown" {
			printInfo("", fmt.Sprintf("suggested category: %s", a.TargetCategory))
		}
	}
	return nil
}
