package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe a recording without summarising it",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranscribe,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file|-]",
	Short: "Summarise a transcript",
	Long: `Sends a transcript to the meeting service and prints the summary.

The transcript is read from the named file, or from stdin when the
argument is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(summarizeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	meetings, err := meetingService()
	if err != nil {
		return err
	}

	selection, err := domain.NewUploadSelection(args[0])
	if err != nil {
		return err
	}

	transcript, err := meetings.Transcribe(cmd.Context(), selection)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}
	cmd.Println(transcript)
	return nil
}

func runSummarize(cmd *cobra.Command, args []string) error {
	meetings, err := meetingService()
	if err != nil {
		return err
	}

	transcript, err := readTranscript(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(transcript) == "" {
		return fmt.Errorf("%w: transcript is empty", domain.ErrInvalidInput)
	}

	summary, err := meetings.Summarize(cmd.Context(), transcript)
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}
	cmd.Println(summary)
	return nil
}

func readTranscript(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return string(data), nil
}
