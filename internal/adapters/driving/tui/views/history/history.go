// Package history lists meetings processed on this machine.
package history

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

// Limit is how many meetings the view loads.
const Limit = 50

// View shows recent meetings.
type View struct {
	styles    *styles.Styles
	list      *list.ResultList
	statusbar *status.Bar
	meetings  driving.MeetingService
	ctx       context.Context

	entries []domain.Meeting
	loading bool
	width   int
	height  int
	ready   bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, km *keymap.KeyMap, meetings driving.MeetingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		list:      list.NewResultList(s).WithLabels("Recent meetings", "No meetings recorded yet"),
		statusbar: status.NewBar(s, km),
		meetings:  meetings,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for loading.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	if v.meetings == nil {
		return nil
	}
	v.loading = true
	meetings := v.meetings
	ctx := v.ctx
	return func() tea.Msg {
		entries, err := meetings.History(ctx, Limit)
		return messages.HistoryLoaded{Meetings: entries, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.loading = false
		if msg.Err != nil {
			v.statusbar.SetError(domain.Describe(msg.Err))
			return v, nil
		}
		v.entries = msg.Meetings
		v.list.SetRows(list.RowsFromMeetings(msg.Meetings))
		v.statusbar.Clear()
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case tea.KeyEnter:
			return v, v.openSelected()
		default:
			v.list, _ = v.list.Update(msg)
		}
	}
	return v, nil
}

func (v *View) openSelected() tea.Cmd {
	i := v.list.Selected()
	if i < 0 || i >= len(v.entries) {
		return nil
	}
	m := v.entries[i]
	return func() tea.Msg {
		return messages.MeetingSelected{ID: m.ID, Preview: &m}
	}
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	body := v.list.View()
	if v.loading {
		body = v.styles.Muted.Render("Loading...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Recent meetings"), "",
		body, "",
		v.styles.Help.Render("[Enter] Open  [Esc] Back"),
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// Entries returns the loaded meetings.
func (v *View) Entries() []domain.Meeting {
	return v.entries
}
