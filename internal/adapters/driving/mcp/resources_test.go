package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractMeetingID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected domain.MeetingID
	}{
		{"valid", "minutes://meetings/42", "42"},
		{"latest", "minutes://meetings/latest", "latest"},
		{"invalid prefix", "file://meetings/42", ""},
		{"nested path", "minutes://meetings/42/pdf", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractMeetingID(tt.uri))
		})
	}
}

func TestServer_handleLatestResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns latest meeting as JSON", func(t *testing.T) {
		server := newTestServer(t, &mockMeetingService{latest: &domain.Meeting{ID: "8", Summary: "Retro"}})

		result, err := server.handleLatestResource(ctx, makeReadResourceRequest(latestURI))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var out MeetingOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &out))
		assert.Equal(t, "8", out.MeetingID)
		assert.Equal(t, "Retro", out.Summary)
	})

	t.Run("not found without history", func(t *testing.T) {
		server := newTestServer(t, &mockMeetingService{})

		_, err := server.handleLatestResource(ctx, makeReadResourceRequest(latestURI))

		require.Error(t, err)
	})
}

func TestServer_handleMeetingResource(t *testing.T) {
	ctx := context.Background()
	svc := &mockMeetingService{
		meetings: map[domain.MeetingID]*domain.Meeting{
			"5": {ID: "5", Transcript: "Bob: hello"},
		},
		latest: &domain.Meeting{ID: "6"},
	}
	server := newTestServer(t, svc)

	t.Run("known meeting", func(t *testing.T) {
		result, err := server.handleMeetingResource(ctx, makeReadResourceRequest("minutes://meetings/5"))

		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, "Bob: hello")
		assert.Equal(t, "minutes://meetings/5", result.Contents[0].URI)
	})

	t.Run("latest alias", func(t *testing.T) {
		result, err := server.handleMeetingResource(ctx, makeReadResourceRequest("minutes://meetings/latest"))

		require.NoError(t, err)
		assert.Contains(t, result.Contents[0].Text, `"meeting_id": "6"`)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		_, err := server.handleMeetingResource(ctx, makeReadResourceRequest("minutes://meetings/99"))

		require.Error(t, err)
	})

	t.Run("malformed uri", func(t *testing.T) {
		_, err := server.handleMeetingResource(ctx, makeReadResourceRequest("minutes://other/5"))

		require.Error(t, err)
	})
}
