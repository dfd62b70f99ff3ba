// Package cli implements the minutes command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
	"github.com/custodia-labs/minutes/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Options are the global flags handed to the bootstrap function.
type Options struct {
	// ConfigDir overrides ~/.minutes.
	ConfigDir string

	// BaseURL overrides api.base_url for this invocation.
	BaseURL string

	// NoHistory keeps processed meetings in memory only.
	NoHistory bool
}

// Services are the driving ports the commands call.
type Services struct {
	Meetings   driving.MeetingService
	Controller driving.MeetingController
	Settings   driving.SettingsService
	Watch      driving.WatchService
	Clipboard  driven.Clipboard

	// AppSettings are the effective settings, flags applied.
	AppSettings domain.AppSettings

	// Close releases resources such as the history database.
	Close func() error
}

// Bootstrap builds services once flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	services  *Services
)

// Global flags.
var (
	verbose       bool
	baseURLFlag   string
	configDirFlag string
	noHistory     bool
)

var rootCmd = &cobra.Command{
	Use:   "minutes",
	Short: "Upload, search and export meeting notes",
	Long: `minutes is a client for a meeting-notes service.

Upload a recording to receive its transcript and summary, search earlier
meetings by keyword, and export a meeting as a PDF.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return teardown()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print requests and debug output to stderr")
	flags.StringVar(&baseURLFlag, "base-url", "", "meeting service URL (overrides api.base_url)")
	flags.StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.minutes)")
	flags.BoolVar(&noHistory, "no-history", false, "do not read or record local meeting history")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap installs the function that builds services from flags.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly, bypassing bootstrap.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if bootstrap == nil || !needsServices(cmd) {
		return nil
	}

	s, err := bootstrap(Options{
		ConfigDir: configDirFlag,
		BaseURL:   baseURLFlag,
		NoHistory: noHistory,
	})
	if err != nil {
		return err
	}
	services = s
	return nil
}

func teardown() error {
	if bootstrap == nil || services == nil || services.Close == nil {
		return nil
	}
	err := services.Close()
	services = nil
	return err
}

// needsServices reports whether cmd talks to any service.
func needsServices(cmd *cobra.Command) bool {
	return cmd != versionCmd
}

// errNotConfigured is returned when a command runs without services.
var errNotConfigured = errors.New("services not configured")

func meetingService() (driving.MeetingService, error) {
	if services == nil || services.Meetings == nil {
		return nil, fmt.Errorf("meeting service: %w", errNotConfigured)
	}
	return services.Meetings, nil
}

func meetingController() (driving.MeetingController, error) {
	if services == nil || services.Controller == nil {
		return nil, fmt.Errorf("meeting controller: %w", errNotConfigured)
	}
	return services.Controller, nil
}

func settingsService() (driving.SettingsService, error) {
	if services == nil || services.Settings == nil {
		return nil, fmt.Errorf("settings service: %w", errNotConfigured)
	}
	return services.Settings, nil
}

func watchService() (driving.WatchService, error) {
	if services == nil || services.Watch == nil {
		return nil, fmt.Errorf("watch service: %w", errNotConfigured)
	}
	return services.Watch, nil
}

func appSettings() domain.AppSettings {
	if services == nil {
		return domain.DefaultAppSettings()
	}
	return services.AppSettings
}
