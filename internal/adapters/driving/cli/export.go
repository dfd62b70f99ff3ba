package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

var (
	exportDownload bool
	exportDir      string
	exportPrintURL bool
)

var exportCmd = &cobra.Command{
	Use:   "export [meeting-id]",
	Short: "Export a meeting summary as PDF",
	Long: `Exports a meeting's summary PDF.

Without a meeting id the most recently processed meeting from local history
is exported. By default the PDF is opened with the system handler; use
--download (or set export.mode = "download") to save it instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVarP(&exportDownload, "download", "d", false, "download the PDF instead of opening it")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "directory for downloaded PDFs (default export.dir)")
	exportCmd.Flags().BoolVar(&exportPrintURL, "print-url", false, "print the PDF URL without opening it")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	controller, err := meetingController()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if len(args) == 1 {
		if err := controller.SelectMeeting(ctx, domain.MeetingID(args[0])); err != nil {
			return err
		}
	} else if err := controller.Restore(ctx); err != nil {
		return err
	}

	settings := appSettings()

	if exportPrintURL {
		return printExportURL(cmd, controller.State().MeetingID())
	}

	mode := settings.Export.Mode
	if exportDownload {
		mode = domain.ExportModeDownload
	}

	if mode == domain.ExportModeDownload {
		dir := exportDir
		if dir == "" {
			dir = settings.Export.Dir
		}
		target, err := controller.DownloadExport(ctx, dir)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		cmd.Printf("Saved %s\n", target.Path)
		return nil
	}

	target, err := controller.RequestExport(ctx)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Opened %s\n", target.URL)
	return nil
}

func printExportURL(cmd *cobra.Command, id domain.MeetingID) error {
	meetings, err := meetingService()
	if err != nil {
		return err
	}
	url, err := meetings.ExportLink(id)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Println(url)
	return nil
}
