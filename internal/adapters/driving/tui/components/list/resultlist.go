// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minutes/internal/core/domain"
)

// Row is one meeting line in a list.
type Row struct {
	ID     domain.MeetingID
	Title  string
	Detail string
}

// RowsFromResults builds rows for search results.
func RowsFromResults(results []domain.SearchResult) []Row {
	rows := make([]Row, 0, len(results))
	for i := range results {
		rows = append(rows, Row{
			ID:     results[i].ID,
			Title:  "Meeting " + results[i].ID.String(),
			Detail: results[i].Summary,
		})
	}
	return rows
}

// RowsFromMeetings builds rows for history entries.
func RowsFromMeetings(meetings []domain.Meeting) []Row {
	rows := make([]Row, 0, len(meetings))
	for i := range meetings {
		m := &meetings[i]
		title := "Meeting " + m.ID.String()
		if m.FileName != "" {
			title += "  " + m.FileName
		}
		if !m.ProcessedAt.IsZero() {
			title += "  " + m.ProcessedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, Row{ID: m.ID, Title: title, Detail: m.Summary})
	}
	return rows
}

// ResultList displays meetings in a navigable list.
type ResultList struct {
	rows     []Row
	selected int
	styles   *styles.Styles
	heading  string
	empty    string
	width    int
	height   int
}

// NewResultList creates a new list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles:  s,
		heading: "Results",
		empty:   "No matching meetings",
		width:   80,
		height:  10,
	}
}

// WithLabels sets the heading and the text shown when the list is empty.
func (r *ResultList) WithLabels(heading, empty string) *ResultList {
	r.heading = heading
	r.empty = empty
	return r
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the list.
func (r *ResultList) View() string {
	if len(r.rows) == 0 {
		return r.styles.Muted.Render(r.empty)
	}

	lines := make([]string, 0, len(r.rows)*2+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", r.heading, len(r.rows))), "")

	// Each row takes two lines.
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.rows) {
		end = len(r.rows)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(i, &r.rows[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *ResultList) renderRow(index int, row *Row) string {
	maxLen := r.width - 6
	if maxLen < 20 {
		maxLen = 20
	}

	title := domain.Truncate(row.Title, maxLen)
	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render("> " + title)
	} else {
		titleLine = r.styles.Normal.Render("  " + title)
	}

	detail := row.Detail
	if i := strings.IndexByte(detail, '\n'); i >= 0 {
		detail = detail[:i]
	}
	return titleLine + "\n" + r.styles.Muted.Render("    "+domain.Truncate(detail, maxLen))
}

// SetRows replaces the list contents and resets the selection.
func (r *ResultList) SetRows(rows []Row) {
	r.rows = rows
	r.selected = 0
}

// Rows returns the current rows.
func (r *ResultList) Rows() []Row {
	return r.rows
}

// Selected returns the index of the selected row.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.rows) {
		r.selected = index
	}
}

// SelectedRow returns the currently selected row, or nil if none.
func (r *ResultList) SelectedRow() *Row {
	if len(r.rows) == 0 || r.selected < 0 || r.selected >= len(r.rows) {
		return nil
	}
	return &r.rows[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.rows)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of rows.
func (r *ResultList) Count() int {
	return len(r.rows)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.rows) == 0
}
