package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

var uploadJSON bool

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a recording and print its summary and transcript",
	Long: `Uploads an audio file to the meeting service, which transcribes and
summarises it. The result is recorded in local history so that a later
"minutes export" can find it.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadJSON, "json", false, "output the meeting as JSON")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	controller, err := meetingController()
	if err != nil {
		return err
	}

	if err := controller.SelectFile(args[0]); err != nil {
		return err
	}

	meeting, err := controller.SubmitUpload(cmd.Context())
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	if uploadJSON {
		return outputMeetingJSON(cmd, meeting)
	}
	outputMeeting(cmd, meeting)
	return nil
}

type meetingJSON struct {
	ID          string `json:"meeting_id"`
	Summary     string `json:"summary"`
	Transcript  string `json:"transcript"`
	PDFLink     string `json:"pdf_link,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	ProcessedAt string `json:"processed_at,omitempty"`
}

func toMeetingJSON(m *domain.Meeting) meetingJSON {
	out := meetingJSON{
		ID:         m.ID.String(),
		Summary:    m.Summary,
		Transcript: m.Transcript,
		PDFLink:    m.PDFLink,
		FileName:   m.FileName,
	}
	if !m.ProcessedAt.IsZero() {
		out.ProcessedAt = m.ProcessedAt.Format(time.RFC3339)
	}
	return out
}

func outputMeetingJSON(cmd *cobra.Command, m *domain.Meeting) error {
	data, err := json.MarshalIndent(toMeetingJSON(m), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal meeting: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMeeting(cmd *cobra.Command, m *domain.Meeting) {
	cmd.Printf("Meeting ID: %s\n", m.ID)
	if m.FileName != "" {
		cmd.Printf("File:       %s\n", m.FileName)
	}
	cmd.Println()
	cmd.Println("Summary:")
	cmd.Println(m.Summary)
	cmd.Println()
	cmd.Println("Transcript:")
	cmd.Println(m.Transcript)
}
