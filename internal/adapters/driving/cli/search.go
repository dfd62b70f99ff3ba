package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

// previewLength is how many summary runes a search line shows.
const previewLength = 100

var (
	searchJSON bool
	searchFull bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search processed meetings by keyword",
	Long: `Searches the meeting service for meetings matching the query.

All arguments are joined into one query and sent as typed. An empty query
is sent as well; the service decides what it matches.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchFull, "full", false, "print full summaries instead of previews")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	controller, err := meetingController()
	if err != nil {
		return err
	}

	controller.SetQuery(strings.Join(args, " "))
	results, err := controller.SubmitSearch(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrStaleResponse) {
			return nil
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchTable(cmd, results)
	return nil
}

type searchResultJSON struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Transcript  string `json:"transcript,omitempty"`
	ActionItems string `json:"action_items,omitempty"`
	Decisions   string `json:"decisions,omitempty"`
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	out := make([]searchResultJSON, 0, len(results))
	for i := range results {
		out = append(out, searchResultJSON{
			ID:          results[i].ID.String(),
			Summary:     results[i].Summary,
			Transcript:  results[i].Transcript,
			ActionItems: results[i].ActionItems,
			Decisions:   results[i].Decisions,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) {
	if len(results) == 0 {
		cmd.Println("No matching meetings.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		summary := results[i].Summary
		if !searchFull {
			summary = results[i].Preview(previewLength)
		}
		cmd.Printf("  [%d] Meeting %s\n", i+1, results[i].ID)
		if summary != "" {
			cmd.Printf("      %s\n", summary)
		}
		cmd.Println()
	}
}
