package list

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

func sampleRows() []Row {
	return RowsFromResults([]domain.SearchResult{
		{ID: "1", Summary: "Budget review"},
		{ID: "2", Summary: "Hiring plan\nsecond line"},
		{ID: "3", Summary: "Retro"},
	})
}

func TestNewResultList(t *testing.T) {
	l := NewResultList(nil)

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedRow())
}

func TestResultList_EmptyView(t *testing.T) {
	l := NewResultList(nil).WithLabels("Recent meetings", "Nothing yet")

	assert.Contains(t, l.View(), "Nothing yet")
}

func TestRowsFromResults(t *testing.T) {
	rows := sampleRows()

	require.Len(t, rows, 3)
	assert.Equal(t, domain.MeetingID("2"), rows[1].ID)
	assert.Equal(t, "Meeting 2", rows[1].Title)
}

func TestRowsFromMeetings(t *testing.T) {
	at := time.Date(2026, 3, 4, 10, 30, 0, 0, time.Local)
	rows := RowsFromMeetings([]domain.Meeting{{ID: "9", FileName: "standup.wav", ProcessedAt: at}})

	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Title, "standup.wav")
	assert.Contains(t, rows[0].Title, "2026-03-04 10:30")
}

func TestResultList_Navigation(t *testing.T) {
	l := NewResultList(nil)
	l.SetRows(sampleRows())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, l.Selected())

	l.MoveDown()
	assert.Equal(t, 2, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, domain.MeetingID("2"), l.SelectedRow().ID)
}

func TestResultList_SetRowsResetsSelection(t *testing.T) {
	l := NewResultList(nil)
	l.SetRows(sampleRows())
	l.SetSelected(2)

	l.SetRows(sampleRows()[:1])

	assert.Equal(t, 0, l.Selected())
}

func TestResultList_SetSelectedOutOfRange(t *testing.T) {
	l := NewResultList(nil)
	l.SetRows(sampleRows())

	l.SetSelected(10)

	assert.Equal(t, 0, l.Selected())
}

func TestResultList_View(t *testing.T) {
	l := NewResultList(nil)
	l.SetRows(sampleRows())
	l.SetDimensions(80, 20)

	view := l.View()

	assert.Contains(t, view, "Results (3)")
	assert.Contains(t, view, "Meeting 1")
	assert.Contains(t, view, "Hiring plan")
	assert.NotContains(t, view, "second line")
}
