package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List meetings processed on this machine",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of meetings")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output meetings as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	meetings, err := meetingService()
	if err != nil {
		return err
	}

	list, err := meetings.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if historyJSON {
		out := make([]meetingJSON, 0, len(list))
		for i := range list {
			out = append(out, toMeetingJSON(&list[i]))
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(list) == 0 {
		cmd.Println("No meetings recorded.")
		return nil
	}

	for i := range list {
		m := &list[i]
		when := "-"
		if !m.ProcessedAt.IsZero() {
			when = m.ProcessedAt.Local().Format("2006-01-02 15:04")
		}
		cmd.Printf("  %-8s %s  %s\n", m.ID, when, m.FileName)
		if m.Summary != "" {
			cmd.Printf("           %s\n", firstLine(m.Summary, previewLength))
		}
	}
	return nil
}

// firstLine returns the first line of s truncated to n runes.
func firstLine(s string, n int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return domain.Truncate(s, n)
}
