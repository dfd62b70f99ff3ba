// Package upload provides the recording upload view for the TUI.
package upload

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/minutes/internal/core/domain"
	"github.com/custodia-labs/minutes/internal/core/ports/driving"
)

// ErrNoController is returned when the view has no controller.
var ErrNoController = errors.New("upload: controller not configured")

// View lets the user pick a file and upload it.
type View struct {
	styles     *styles.Styles
	input      *input.Field
	spinner    spinner.Model
	statusbar  *status.Bar
	controller driving.MeetingController
	ctx        context.Context

	uploading bool
	err       error
	width     int
	height    int
	ready     bool
}

// NewView creates a new upload view.
func NewView(s *styles.Styles, km *keymap.KeyMap, controller driving.MeetingController) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:     s,
		input:      input.NewPathInput(s),
		spinner:    sp,
		statusbar:  status.NewBar(s, km),
		controller: controller,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for uploads.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case spinner.TickMsg:
		if !v.uploading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.UploadCompleted:
		v.uploading = false
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, v.input.Focus()
		}
		v.err = nil
		v.statusbar.Clear()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Keys are ignored while the upload runs.
	if v.uploading {
		return v, nil
	}

	if msg.Type == tea.KeyEnter {
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) submit() tea.Cmd {
	if v.controller == nil {
		v.setError(ErrNoController)
		return nil
	}

	path := strings.TrimSpace(v.input.Value())
	if path != "" {
		if err := v.controller.SelectFile(expandHome(path)); err != nil {
			v.setError(err)
			return nil
		}
	}

	v.uploading = true
	v.err = nil
	v.input.Blur()
	v.statusbar.SetState(status.StateUploading)
	v.statusbar.SetMessage("")

	controller := v.controller
	ctx := v.ctx
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		meeting, err := controller.SubmitUpload(ctx)
		return messages.UploadCompleted{Meeting: meeting, Err: err}
	})
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetError(domain.Describe(err))
}

// View renders the upload view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Upload recording"), "",
		v.input.View(), "",
	}

	if v.controller != nil {
		if sel := v.controller.State().Selection; !sel.IsZero() {
			sections = append(sections,
				v.styles.Label.Render("Selected: ")+v.styles.Normal.Render(sel.Name), "")
		}
	}

	if v.uploading {
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("Transcribing and summarising..."), "")
	}

	sections = append(sections,
		v.styles.Help.Render("[Enter] Upload  [Esc] Back"), "",
		v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Uploading reports whether an upload is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the input and error.
func (v *View) Reset() {
	v.input.Reset()
	v.input.Focus()
	v.err = nil
	v.statusbar.Clear()
}

// SetPath prefills the path input.
func (v *View) SetPath(path string) {
	v.input.SetValue(path)
}
