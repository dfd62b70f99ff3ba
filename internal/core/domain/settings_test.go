package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "http://127.0.0.1:8000", s.API.BaseURL)
	assert.Equal(t, DefaultTimeout, s.API.Timeout)
	assert.False(t, s.API.HasToken())
	assert.Equal(t, ExportModeOpen, s.Export.Mode)
	assert.Equal(t, 1, s.Watch.MaxConcurrent)
	assert.True(t, s.History.Enabled)
}

func TestExportMode_IsValid(t *testing.T) {
	assert.True(t, ExportModeOpen.IsValid())
	assert.True(t, ExportModeDownload.IsValid())
	assert.False(t, ExportMode("email").IsValid())
	assert.Equal(t, "download", ExportModeDownload.String())
}
