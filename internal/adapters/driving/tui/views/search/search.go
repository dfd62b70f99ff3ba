// Package search provides the meeting search view for the TUI.
package search

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	list      *list.ResultList
	statusbar *status.Bar

	controller driving.MeetingController
	ctx        context.Context

	results    []domain.SearchResult
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing, false = navigating results
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, controller driving.MeetingController) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       list.NewResultList(s),
		statusbar:  status.NewBar(s, km),
		controller: controller,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetError(domain.Describe(msg.Err))
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if !v.focusInput {
			v.focusInput = true
			return v, v.input.Focus()
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			return v, v.submit()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		if v.controller != nil {
			v.controller.SetQuery(v.input.Value())
		}
		return v, cmd
	}

	switch {
	case msg.Type == tea.KeyEnter:
		return v, v.openSelected()
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		return v, v.input.Focus()
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// submit sends the current query, which may be empty.
func (v *View) submit() tea.Cmd {
	if v.controller == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoController}
		}
	}

	v.controller.SetQuery(v.input.Value())
	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")

	controller := v.controller
	ctx := v.ctx
	return func() tea.Msg {
		results, err := controller.SubmitSearch(ctx)
		if errors.Is(err, domain.ErrStaleResponse) {
			return nil
		}
		return messages.SearchCompleted{Results: results, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetError(domain.Describe(msg.Err))
		return
	}

	v.err = nil
	v.results = msg.Results
	v.list.SetRows(list.RowsFromResults(msg.Results))
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Results))

	if len(msg.Results) > 0 {
		v.focusInput = false
		v.input.Blur()
	}
}

func (v *View) openSelected() tea.Cmd {
	i := v.list.Selected()
	if i < 0 || i >= len(v.results) {
		return nil
	}
	r := v.results[i]
	return func() tea.Msg {
		return messages.MeetingSelected{
			ID: r.ID,
			Preview: &domain.Meeting{
				ID:         r.ID,
				Summary:    r.Summary,
				Transcript: r.Transcript,
			},
		}
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Search meetings"), "", v.input.View(), "")
	if v.results != nil {
		sections = append(sections, v.list.View())
	}
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the results of the last completed search.
func (v *View) Results() []domain.SearchResult {
	return v.results
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset restores the view from the controller's current query and results.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.err = nil
	v.statusbar.Clear()

	if v.controller == nil {
		v.input.SetValue("")
		v.results = nil
		v.list.SetRows(nil)
		return
	}
	state := v.controller.State()
	v.input.SetValue(state.Query)
	v.results = state.Results
	v.list.SetRows(list.RowsFromResults(state.Results))
	if state.HasResults() {
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetResultCount(len(state.Results))
	}
}
