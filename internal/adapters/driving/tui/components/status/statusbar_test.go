package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_StateText(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUploading, "Uploading"},
		{StateSearching, "Searching"},
		{StateExporting, "Exporting"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_NoResultsIsNotAnError(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateResults)
	bar.SetResultCount(0)

	view := bar.View()

	assert.Contains(t, view, "No matching meetings")
	assert.NotContains(t, view, "Error")
}

func TestBar_ResultCount(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateResults)
	bar.SetResultCount(4)

	assert.Contains(t, bar.View(), "4 results")
	assert.Equal(t, 4, bar.ResultCount())
}

func TestBar_SetError(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetError("Cannot reach the meeting service")

	assert.Equal(t, StateError, bar.State())
	assert.Contains(t, bar.View(), "Cannot reach the meeting service")
}

func TestBar_NoticeInMeetingState(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(140)
	bar.SetState(StateMeeting)
	bar.SetMessage("Copied summary")

	view := bar.View()

	assert.Contains(t, view, "Copied summary")
	assert.Contains(t, view, "export pdf")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetError("boom")
	bar.SetResultCount(3)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.ResultCount())
}
