package domain

import "time"

// Default client settings.
const (
	// DefaultBaseURL is the backend origin used when none is configured.
	DefaultBaseURL = "http://127.0.0.1:8000"

	// DefaultTimeout bounds a single request. Transcription is slow.
	DefaultTimeout = 5 * time.Minute

	// DefaultRequestsPerSecond throttles outbound calls.
	DefaultRequestsPerSecond = 2.0

	// DefaultWatchConcurrency bounds parallel uploads in watch mode.
	DefaultWatchConcurrency = 1
)

// APISettings holds backend connection configuration.
type APISettings struct {
	// BaseURL is the backend origin, e.g. http://127.0.0.1:8000.
	BaseURL string

	// Token is an optional bearer token.
	Token string

	// Timeout bounds a single request. Zero disables the timeout.
	Timeout time.Duration

	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond float64
}

// HasToken returns true if a bearer token is configured.
func (a APISettings) HasToken() bool {
	return a.Token != ""
}

// ExportSettings holds PDF export configuration.
type ExportSettings struct {
	// Mode is how exports are delivered.
	Mode ExportMode

	// Dir is where downloaded exports are written.
	Dir string
}

// WatchSettings holds directory watch configuration.
type WatchSettings struct {
	// MaxConcurrent bounds parallel uploads.
	MaxConcurrent int
}

// HistorySettings controls the local meeting history.
type HistorySettings struct {
	// Enabled records processed meetings locally.
	Enabled bool
}

// AppSettings aggregates all client settings.
type AppSettings struct {
	API     APISettings
	Export  ExportSettings
	Watch   WatchSettings
	History HistorySettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:           DefaultBaseURL,
			Timeout:           DefaultTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Export: ExportSettings{
			Mode: ExportModeOpen,
			Dir:  ".",
		},
		Watch: WatchSettings{
			MaxConcurrent: DefaultWatchConcurrency,
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}
