package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

const (
	uriScheme    = "minutes://"
	meetingsPath = uriScheme + "meetings/"
	latestURI    = meetingsPath + "latest"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         latestURI,
		Name:        "latest-meeting",
		Description: "The most recently processed meeting",
		MIMEType:    "application/json",
	}, s.handleLatestResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: meetingsPath + "{meetingId}",
		Name:        "meeting",
		Description: "A processed meeting from local history",
		MIMEType:    "application/json",
	}, s.handleMeetingResource)
}

func (s *Server) handleLatestResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	meeting, err := s.ports.Meetings.Latest(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("loading latest meeting: %w", err)
	}
	return meetingResource(req.Params.URI, meeting)
}

func (s *Server) handleMeetingResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractMeetingID(req.Params.URI)
	if id.IsZero() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if id == "latest" {
		return s.handleLatestResource(ctx, req)
	}

	meeting, err := s.ports.Meetings.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("loading meeting: %w", err)
	}
	return meetingResource(req.Params.URI, meeting)
}

func meetingResource(uri string, m *domain.Meeting) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(toMeetingOutput(m), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling meeting: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMeetingID extracts the id from a URI like minutes://meetings/{meetingId}.
func extractMeetingID(uri string) domain.MeetingID {
	if !strings.HasPrefix(uri, meetingsPath) {
		return ""
	}
	id := strings.TrimPrefix(uri, meetingsPath)
	if strings.Contains(id, "/") {
		return ""
	}
	return domain.MeetingID(id)
}
