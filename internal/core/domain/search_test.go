package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{"shorter than limit", "short", 10, "short"},
		{"exact length", "exact", 5, "exact"},
		{"longer than limit", "a longer summary", 8, "a longer..."},
		{"zero limit", "anything", 0, ""},
		{"multibyte runes", "réunion très longue", 7, "réunion..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.n))
		})
	}
}

func TestSearchResult_Preview(t *testing.T) {
	r := SearchResult{ID: "7", Summary: strings.Repeat("x", 150)}

	preview := r.Preview(100)

	assert.Len(t, preview, 103)
	assert.True(t, strings.HasSuffix(preview, "..."))
}
