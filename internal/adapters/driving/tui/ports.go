// Package tui provides an interactive terminal user interface for minutes.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

// Ports aggregates the services the TUI depends on.
type Ports struct {
	// Controller owns the upload, search and export state.
	Controller driving.MeetingController

	// Meetings provides history lookups.
	Meetings driving.MeetingService

	// Settings supplies the export mode and directory.
	Settings driving.SettingsService

	// Clipboard copies meeting text. Optional.
	Clipboard driven.Clipboard
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Controller == nil {
		return ErrMissingController
	}
	if p.Meetings == nil {
		return ErrMissingMeetingService
	}
	return nil
}
