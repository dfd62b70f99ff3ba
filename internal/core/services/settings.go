package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyBaseURL           = "api.base_url"
	keyToken             = "api.token"
	keyTimeoutSeconds    = "api.timeout_seconds"
	keyRequestsPerSecond = "api.requests_per_second"
	keyExportMode        = "export.mode"
	keyExportDir         = "export.dir"
	keyWatchConcurrent   = "watch.max_concurrent"
	keyHistoryEnabled    = "history.enabled"
)

// settingKeys lists every settable key in display order.
var settingKeys = []string{
	keyBaseURL,
	keyToken,
	keyTimeoutSeconds,
	keyRequestsPerSecond,
	keyExportMode,
	keyExportDir,
	keyWatchConcurrent,
	keyHistoryEnabled,
}

// SettingsService manages client settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Missing or invalid values fall back to
// defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:           s.getBaseURL(defaults.API.BaseURL),
			Token:             s.configStore.GetString(keyToken),
			Timeout:           s.getTimeout(defaults.API.Timeout),
			RequestsPerSecond: s.getFloat(keyRequestsPerSecond, defaults.API.RequestsPerSecond),
		},
		Export: domain.ExportSettings{
			Mode: s.getExportMode(defaults.Export.Mode),
			Dir:  s.getString(keyExportDir, defaults.Export.Dir),
		},
		Watch: domain.WatchSettings{
			MaxConcurrent: s.getInt(keyWatchConcurrent, defaults.Watch.MaxConcurrent),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
	}

	if settings.Watch.MaxConcurrent < 1 {
		settings.Watch.MaxConcurrent = defaults.Watch.MaxConcurrent
	}

	return settings, nil
}

// Save persists settings. An empty token is left untouched.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := validateBaseURL(settings.API.BaseURL); err != nil {
		return err
	}
	if !settings.Export.Mode.IsValid() {
		return fmt.Errorf("%w: export mode %q", domain.ErrInvalidInput, settings.Export.Mode)
	}

	if err := s.configStore.Set(keyBaseURL, normaliseBaseURL(settings.API.BaseURL)); err != nil {
		return fmt.Errorf("save api base_url: %w", err)
	}
	if settings.API.Token != "" {
		if err := s.configStore.Set(keyToken, settings.API.Token); err != nil {
			return fmt.Errorf("save api token: %w", err)
		}
	}
	if err := s.configStore.Set(keyTimeoutSeconds, int(settings.API.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save api timeout: %w", err)
	}
	if err := s.configStore.Set(keyRequestsPerSecond, settings.API.RequestsPerSecond); err != nil {
		return fmt.Errorf("save api requests_per_second: %w", err)
	}
	if err := s.configStore.Set(keyExportMode, settings.Export.Mode.String()); err != nil {
		return fmt.Errorf("save export mode: %w", err)
	}
	if err := s.configStore.Set(keyExportDir, settings.Export.Dir); err != nil {
		return fmt.Errorf("save export dir: %w", err)
	}
	if err := s.configStore.Set(keyWatchConcurrent, settings.Watch.MaxConcurrent); err != nil {
		return fmt.Errorf("save watch max_concurrent: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}

	return nil
}

// Set parses value for key and persists it.
// Setting api.token to "" removes the token.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case keyBaseURL:
		if err := validateBaseURL(value); err != nil {
			return err
		}
		return s.configStore.Set(key, normaliseBaseURL(value))

	case keyToken:
		if value == "" {
			return s.configStore.Delete(key)
		}
		return s.configStore.Set(key, value)

	case keyTimeoutSeconds, keyWatchConcurrent:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number", domain.ErrInvalidInput, key)
		}
		minimum := 0
		if key == keyWatchConcurrent {
			minimum = 1
		}
		if n < minimum {
			return fmt.Errorf("%w: %s must be at least %d", domain.ErrInvalidInput, key, minimum)
		}
		return s.configStore.Set(key, n)

	case keyRequestsPerSecond:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, f)

	case keyExportMode:
		mode := domain.ExportMode(value)
		if !mode.IsValid() {
			return fmt.Errorf("%w: export.mode must be %q or %q",
				domain.ErrInvalidInput, domain.ExportModeOpen, domain.ExportModeDownload)
		}
		return s.configStore.Set(key, mode.String())

	case keyExportDir:
		if value == "" {
			return fmt.Errorf("%w: export.dir must not be empty", domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)

	case keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, b)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base URL must be an absolute http(s) URL, got %q", domain.ErrInvalidInput, raw)
	}
	return nil
}

func normaliseBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBaseURL(defaultVal string) string {
	val := s.configStore.GetString(keyBaseURL)
	if validateBaseURL(val) != nil {
		return defaultVal
	}
	return normaliseBaseURL(val)
}

func (s *SettingsService) getTimeout(defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(keyTimeoutSeconds); !exists {
		return defaultVal
	}
	seconds := s.configStore.GetInt(keyTimeoutSeconds)
	if seconds < 0 {
		return defaultVal
	}
	return time.Duration(seconds) * time.Second
}

func (s *SettingsService) getExportMode(defaultVal domain.ExportMode) domain.ExportMode {
	val := s.configStore.GetString(keyExportMode)
	if val == "" {
		return defaultVal
	}
	mode := domain.ExportMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
