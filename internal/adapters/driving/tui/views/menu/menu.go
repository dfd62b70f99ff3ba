// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/minutes/internal/adapters/driving/tui/styles"
)

// Item is one menu entry. Quit items end the program instead of
// switching views.
type Item struct {
	Label string
	Hint  string
	View  messages.ViewType
	Quit  bool
}

func defaultItems() []Item {
	return []Item{
		{Label: "Upload recording", Hint: "transcribe and summarise an audio file", View: messages.ViewUpload},
		{Label: "Search meetings", Hint: "keyword search over processed meetings", View: messages.ViewSearch},
		{Label: "Recent meetings", Hint: "meetings processed on this machine", View: messages.ViewHistory},
		{Label: "Help", Hint: "key bindings", View: messages.ViewHelp},
		{Label: "Quit", Quit: true},
	}
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		items:  defaultItems(),
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
		return nil
	case key.Matches(msg, v.keys.Down):
		if v.selected < len(v.items)-1 {
			v.selected++
		}
		return nil
	case key.Matches(msg, v.keys.Select):
		return v.activate(v.selected)
	case key.Matches(msg, v.keys.Quit):
		return tea.Quit
	}

	// Digits jump straight to an entry.
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(v.items) {
		v.selected = n - 1
		return v.activate(v.selected)
	}
	return nil
}

func (v *View) activate(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("minutes"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Meeting transcripts, summaries and exports"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == v.selected {
			b.WriteString("> " + v.styles.Subtitle.Render(label))
			if item.Hint != "" && v.width >= 60 {
				b.WriteString("  " + v.styles.Muted.Render(item.Hint))
			}
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter/1-5] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
