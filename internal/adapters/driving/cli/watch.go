package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Process recordings as they appear in a directory",
	Long: `Watches a directory and uploads every new audio file
(.mp3 .wav .m4a .ogg .flac .webm .mp4 .aac) once it has finished writing.

Runs until interrupted. In-flight uploads complete before exit.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, err := watchService()
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	err = svc.Watch(cmd.Context(), args[0], func(ev driving.WatchEvent) {
		if ev.Err != nil {
			cmd.PrintErrf("✗ %s: %s\n", ev.Path, domain.Describe(ev.Err))
			return
		}
		cmd.Printf("✓ %s → meeting %s\n", ev.Path, ev.Meeting.ID)
		if ev.Meeting.Summary != "" {
			cmd.Printf("    %s\n", firstLine(ev.Meeting.Summary, previewLength))
		}
	})
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
