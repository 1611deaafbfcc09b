package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alliance-genome/agr-ai-curation-sub000/pkg/client"
)

const displayTextLimit = 400

var (
	searchScope     string
	searchQuery     string
	searchStrategy  string
	searchLimit     int
	searchAlpha     float64
	searchRerank    bool
	searchDiversify bool
	searchLambda    float64
	searchSections  []string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search passages within a document scope",
	Long: `Search runs a hybrid lexical+vector query against one document scope.

Examples:
  chunkql search -s paper-123 -q "insulin signaling pathway"
  chunkql search -s paper-123 -q "daf-16" --sections results,discussion
  chunkql search -s paper-123 -q "lifespan extension" --diversify --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchScope, "scope", "s", "", "document scope id (required)")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().StringVar(&searchStrategy, "strategy", "", "search strategy: hybrid, lexical, hybrid_lexical_first (default from server)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "number of results (default from server)")
	searchCmd.Flags().Float64Var(&searchAlpha, "alpha", -1, "semantic weight 0..1 (default from server)")
	searchCmd.Flags().BoolVar(&searchRerank, "rerank", false, "rerank candidates")
	searchCmd.Flags().BoolVar(&searchDiversify, "diversify", false, "diversify results with MMR")
	searchCmd.Flags().Float64Var(&searchLambda, "lambda", -1, "MMR relevance/diversity trade-off 0..1 (default from server)")
	searchCmd.Flags().StringSliceVar(&searchSections, "sections", nil, "restrict to section titles (comma separated)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	_ = searchCmd.MarkFlagRequired("scope")
	_ = searchCmd.MarkFlagRequired("query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	params := client.SearchParams{
		ScopeID:       searchScope,
		Query:         searchQuery,
		Strategy:      searchStrategy,
		ResultLimit:   searchLimit,
		Rerank:        searchRerank,
		Diversify:     searchDiversify,
		SectionFilter: searchSections,
	}
	if searchAlpha >= 0 {
		params.Alpha = &searchAlpha
	}
	if searchLambda >= 0 {
		params.DiversifyLambda = &searchLambda
	}

	resp, err := newClient().Search(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		output, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if resp.Total == 0 {
		fmt.Println("No results found.")
		return nil
	}
	fmt.Printf("Found %d results for: %s\n\n", resp.Total, searchQuery)
	for i, h := range resp.Hits {
		loc := h.SectionTitle
		if h.PageNumber > 0 {
			loc = fmt.Sprintf("%s p.%d", loc, h.PageNumber)
		}
		fmt.Printf("--- [%d] %s (%s, score: %.3f) ---\n", i+1, h.ID, strings.TrimSpace(loc), h.Score)
		text := h.Text
		if len(text) > displayTextLimit {
			text = text[:displayTextLimit] + "..."
		}
		fmt.Println(text)
		fmt.Println()
	}
	return nil
}
