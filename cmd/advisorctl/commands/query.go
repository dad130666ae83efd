package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"material-advisor/internal/app"
	"material-advisor/internal/knowledge"

	"github.com/spf13/cobra"
)

var (
	queryTopK       int
	queryLimit      int
	queryShowPrompt bool
)

var queryCmd = &cobra.Command{
	Use:   "query <question>",
	Short: "Run retrieval for one customer question",
	Long: `Builds the index once, then prints the scored search results, the expanded
recommendations and the routed or assembled context for the question.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", 0, "search results to show (0 uses the configured default)")
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "l", 0, "recommendations to show (0 uses the configured default)")
	queryCmd.Flags().BoolVarP(&queryShowPrompt, "prompt", "p", false, "print the full assembled prompt")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Retrieval.RebuildTimeout+time.Minute)
	defer cancel()

	a, err := app.New(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	start := time.Now()
	if err := a.Engine.Refresh(ctx); err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	st := a.Engine.Status()
	fmt.Printf("Index: %d documents, %d embedded in %s\n\n", st.DocumentCount, st.IndexedCount, time.Since(start).Round(time.Millisecond))

	fmt.Printf("Expansions: %s\n", strings.Join(knowledge.Expand(question), " | "))
	if rewritten := knowledge.RewriteUseCase(question); rewritten != question {
		fmt.Printf("Rewritten:  %s\n", rewritten)
	}
	fmt.Println()

	scored, err := a.Engine.SearchScored(ctx, question, queryTopK)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tHYBRID\tVECTOR\tKEYWORD\tBONUS\tID\tNAME")
	for i, c := range scored {
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%.2f\t%s\t%s\n",
			i+1, c.HybridScore, c.VectorScore, c.KeywordScore, c.NameBonus, c.Document.ID, c.Document.Name)
	}
	w.Flush()

	recs, err := a.Engine.Recommend(ctx, question, queryLimit)
	if err != nil {
		return err
	}
	fmt.Println("\nRecommendations:")
	for i, d := range recs {
		fmt.Printf("  %d. %s (%s)\n", i+1, d.Name, d.Category)
	}

	if routed := a.Engine.Route(ctx, question); routed != nil {
		fmt.Println("\nRouted to:")
		for _, d := range routed {
			fmt.Printf("  %s %s\n", d.ID, d.Name)
		}
	}

	if queryShowPrompt {
		fmt.Println("\n--- prompt ---")
		fmt.Println(a.Engine.AugmentPrompt(ctx, question))
	}
	return nil
}
