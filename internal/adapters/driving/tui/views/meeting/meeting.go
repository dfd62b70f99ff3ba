// Package meeting provides the meeting detail view for the TUI.
package meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driven"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

// ErrNoClipboard is returned when copy is requested without a clipboard.
var ErrNoClipboard = errors.New("clipboard not available")

// Tab selects which text the view shows.
type Tab int

const (
	TabSummary Tab = iota
	TabTranscript
)

func (t Tab) String() string {
	if t == TabTranscript {
		return "Transcript"
	}
	return "Summary"
}

// View shows one meeting and offers export and copy.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	viewport  viewport.Model
	statusbar *status.Bar

	controller driving.MeetingController
	settings   driving.SettingsService
	clipboard  driven.Clipboard
	ctx        context.Context

	meeting   *domain.Meeting
	tab       Tab
	exporting bool
	back      messages.ViewType
	width     int
	height    int
	ready     bool
}

// NewView creates a new meeting view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	controller driving.MeetingController,
	settings driving.SettingsService,
	clipboard driven.Clipboard,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetState(status.StateMeeting)

	return &View{
		styles:     s,
		keymap:     km,
		viewport:   viewport.New(80, 16),
		statusbar:  bar,
		controller: controller,
		settings:   settings,
		clipboard:  clipboard,
		ctx:        context.Background(),
		back:       messages.ViewMenu,
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for exports.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetMeeting replaces the displayed meeting and returns to the summary tab.
func (v *View) SetMeeting(m *domain.Meeting, back messages.ViewType) {
	v.meeting = m
	v.back = back
	v.tab = TabSummary
	v.statusbar.SetState(status.StateMeeting)
	v.statusbar.SetMessage("")
	v.refresh()
}

// Update handles messages for the meeting view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ExportCompleted:
		v.exporting = false
		v.statusbar.SetState(status.StateMeeting)
		if msg.Err != nil {
			v.statusbar.SetError(domain.Describe(msg.Err))
			return v, nil
		}
		v.statusbar.SetMessage(describeExport(msg.Target))
		return v, nil

	case messages.Copied:
		if msg.Err != nil {
			v.statusbar.SetError("Copy failed: " + msg.Err.Error())
			return v, nil
		}
		v.statusbar.SetState(status.StateMeeting)
		v.statusbar.SetMessage("Copied " + msg.What)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		back := v.back
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
		}
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Toggle):
		if v.tab == TabSummary {
			v.tab = TabTranscript
		} else {
			v.tab = TabSummary
		}
		v.refresh()
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.Export):
		return v, v.export()
	case keymap.Matches(msg.String(), v.keymap.Copy):
		return v, v.copyText()
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *View) export() tea.Cmd {
	if v.exporting || v.controller == nil {
		return nil
	}

	mode := domain.ExportModeOpen
	dir := "."
	if v.settings != nil {
		if s, err := v.settings.Get(); err == nil {
			mode = s.Export.Mode
			dir = s.Export.Dir
		}
	}

	v.exporting = true
	v.statusbar.SetState(status.StateExporting)

	controller := v.controller
	ctx := v.ctx
	return func() tea.Msg {
		var target *domain.ExportTarget
		var err error
		if mode == domain.ExportModeDownload {
			target, err = controller.DownloadExport(ctx, dir)
		} else {
			target, err = controller.RequestExport(ctx)
		}
		return messages.ExportCompleted{Target: target, Err: err}
	}
}

func (v *View) copyText() tea.Cmd {
	what := v.tab.String()
	if v.clipboard == nil {
		return func() tea.Msg {
			return messages.Copied{What: what, Err: ErrNoClipboard}
		}
	}
	text := v.text()
	clipboard := v.clipboard
	ctx := v.ctx
	return func() tea.Msg {
		return messages.Copied{What: what, Err: clipboard.Copy(ctx, text)}
	}
}

func describeExport(t *domain.ExportTarget) string {
	if t == nil {
		return ""
	}
	if t.Mode == domain.ExportModeDownload {
		return "Saved " + t.Path
	}
	return "Opened " + t.URL
}

func (v *View) text() string {
	if v.meeting == nil {
		return ""
	}
	if v.tab == TabTranscript {
		return v.meeting.Transcript
	}
	return v.meeting.Summary
}

func (v *View) refresh() {
	content := v.text()
	if content == "" {
		content = v.styles.Muted.Render(fmt.Sprintf("(no %s)", v.tab.String()))
	}
	v.viewport.SetContent(lipgloss.NewStyle().Width(v.viewport.Width).Render(content))
	v.viewport.GotoTop()
}

// View renders the meeting view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.meeting == nil {
		return v.styles.Muted.Render("No meeting selected")
	}

	header := v.styles.Title.Render("Meeting " + v.meeting.ID.String())
	if v.meeting.FileName != "" {
		header += "  " + v.styles.Muted.Render(v.meeting.FileName)
	}

	tabs := v.renderTab(TabSummary) + "  " + v.renderTab(TabTranscript)

	return lipgloss.JoinVertical(lipgloss.Left,
		header, "",
		tabs, "",
		v.viewport.View(), "",
		v.statusbar.View(),
	)
}

func (v *View) renderTab(t Tab) string {
	if t == v.tab {
		return v.styles.ActiveTab.Render(t.String())
	}
	return v.styles.Tab.Render(t.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	vpHeight := height - 8
	if vpHeight < 3 {
		vpHeight = 3
	}
	v.viewport.Width = width
	v.viewport.Height = vpHeight
	v.statusbar.SetWidth(width)
	v.refresh()
}

// Meeting returns the displayed meeting.
func (v *View) Meeting() *domain.Meeting {
	return v.meeting
}

// Tab returns the visible tab.
func (v *View) Tab() Tab {
	return v.tab
}

// Exporting reports whether an export is in flight.
func (v *View) Exporting() bool {
	return v.exporting
}

// StatusMessage returns the status bar text.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}
