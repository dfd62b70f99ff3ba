package mcp

import (
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Meetings provides processing, search, export and history.
	Meetings driving.MeetingService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Meetings == nil {
		return ErrMissingMeetingService
	}
	return nil
}
