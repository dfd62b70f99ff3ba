// Command minutes is a terminal client for the meeting-notes service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/custodia-labs/minutes/internal/adapters/driven/config/file"
	"github.com/custodia-labs/minutes/internal/adapters/driven/meetingapi"
	"github.com/custodia-labs/minutes/internal/adapters/driven/opener"
	"github.com/custodia-labs/minutes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/minutes/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/minutes/internal/adapters/driven/watcher"
	"github.com/custodia-labs/minutes/internal/adapters/driving/cli"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/core/services"
	"github.com/custodia-labs/minutes/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code. Deferred cleanup
// runs before main exits.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// bootstrap wires adapters to services once global flags are known.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore := openConfigStore(opts.ConfigDir)
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if opts.BaseURL != "" {
		settings.API.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}

	client, err := meetingapi.New(meetingapi.ConfigFromSettings(settings.API))
	if err != nil {
		return nil, err
	}

	var closers []func() error
	var history driven.MeetingStore
	if opts.NoHistory || !settings.History.Enabled {
		history = memory.NewMeetingStore()
	} else {
		dataDir := ""
		if opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			logger.Warn("history unavailable, keeping meetings in memory: %v", err)
			history = memory.NewMeetingStore()
		} else {
			history = store.MeetingStore()
			closers = append(closers, store.Close)
		}
	}

	system := opener.New()
	meetings := services.NewMeetingService(client, history)
	controller := services.NewController(meetings, system)
	watch := services.NewWatchService(meetings, watcher.New(watcher.DefaultSettle), settings.Watch.MaxConcurrent)

	logger.Debug("backend %s, history %T", client.BaseURL(), history)

	return &cli.Services{
		Meetings:    meetings,
		Controller:  controller,
		Settings:    settingsService,
		Watch:       watch,
		Clipboard:   system,
		AppSettings: *settings,
		Close: func() error {
			var firstErr error
			for _, c := range closers {
				if err := c(); err != nil && firstErr == nil {
					firstErr = err
				}
			}
			return firstErr
		},
	}, nil
}

// openConfigStore returns the TOML store, or an in-memory store when the
// config directory cannot be used.
func openConfigStore(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		return memory.NewConfigStore()
	}
	return store
}
