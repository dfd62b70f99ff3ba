package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/views/meeting"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/views/upload"
	"github.com/custodia-labs/minutes/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView    *menu.View
	uploadView  *upload.View
	searchView  *search.View
	meetingView *meeting.View
	historyView *history.View

	currentView messages.ViewType

	// previousView is where the meeting view returns on Esc.
	previousView messages.ViewType

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		uploadView:  upload.NewView(s, km, ports.Controller),
		searchView:  search.NewView(s, km, ports.Controller),
		meetingView: meeting.NewView(s, km, ports.Controller, ports.Settings, ports.Clipboard),
		historyView: history.NewView(s, km, ports.Meetings),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.uploadView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.meetingView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("minutes"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.routeKey(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.UploadCompleted:
		a.uploadView, cmd = a.uploadView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			return a, cmd
		}
		a.err = nil
		a.meetingView.SetMeeting(msg.Meeting, messages.ViewUpload)
		a.currentView = messages.ViewMeeting
		return a, cmd

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.HistoryLoaded:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.MeetingSelected:
		a.previousView = a.currentView
		return a, a.loadMeeting(msg)

	case messages.MeetingLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.meetingView.SetMeeting(msg.Meeting, a.previousView)
		a.currentView = messages.ViewMeeting
		return a, nil

	case messages.ExportCompleted, messages.Copied:
		a.meetingView, cmd = a.meetingView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd
	}

	// Spinner ticks and cursor blinks go to the active view.
	switch a.currentView {
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewMeeting:
		a.meetingView, cmd = a.meetingView.Update(msg)
	case messages.ViewMenu, messages.ViewHistory, messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewMeeting:
		a.meetingView, cmd = a.meetingView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	switch view {
	case messages.ViewUpload:
		a.uploadView.Reset()
		return a.uploadView.Init()
	case messages.ViewSearch:
		a.searchView.Reset()
		return a.searchView.Init()
	case messages.ViewHistory:
		return a.historyView.Init()
	case messages.ViewMenu, messages.ViewMeeting, messages.ViewHelp:
	}
	return nil
}

// loadMeeting points the controller at the selected meeting and fills in
// text the history lacks from the preview.
func (a *App) loadMeeting(sel messages.MeetingSelected) tea.Cmd {
	controller := a.ports.Controller
	ctx := a.ctx
	return func() tea.Msg {
		if err := controller.SelectMeeting(ctx, sel.ID); err != nil {
			return messages.MeetingLoaded{Err: err}
		}
		m := controller.State().Meeting
		if m == nil {
			return messages.MeetingLoaded{Err: domain.ErrNoMeeting}
		}
		if p := sel.Preview; p != nil {
			if m.Summary == "" {
				m.Summary = p.Summary
			}
			if m.Transcript == "" {
				m.Transcript = p.Transcript
			}
		}
		return messages.MeetingLoaded{Meeting: m}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewUpload:
		return a.uploadView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewMeeting:
		return a.meetingView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Upload:
  (type)      Path to an audio file
  enter       Upload and process

Search:
  (type)      Keywords
  enter       Search (an empty query is sent as is)
  j/k, ↑/↓    Navigate results
  enter       Open meeting
  /           New search

Meeting:
  tab         Summary / transcript
  e           Export PDF
  c           Copy visible text

[esc] back to menu`
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Notice returns the user-facing text for the last error.
func (a *App) Notice() string {
	if a.err == nil || errors.Is(a.err, domain.ErrStaleResponse) {
		return ""
	}
	return domain.Describe(a.err)
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.uploadView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.meetingView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
