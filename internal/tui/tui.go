// Package tui provides a Bubble Tea terminal viewer for cue sheets.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cuesheet/internal/document"
	"cuesheet/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateView
)

// Model is the Bubble Tea model for the cue sheet viewer.
type Model struct {
	state     State
	textInput textinput.Model
	viewport  viewport.Model
	err       error

	path   string
	header string

	width  int
	height int
	ready  bool
}

// NewModel creates a new viewer model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/album.cue"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	return Model{
		state:     StateInput,
		textInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 8
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state != StateInput {
				return m, tea.Quit
			}
		case "esc":
			if m.state == StateView {
				m.state = StateInput
				m.err = nil
				m.textInput.Focus()
				return m, textinput.Blink
			}
		case "enter":
			if m.state == StateInput {
				return m.open(strings.TrimSpace(m.textInput.Value()))
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateInput:
		m.textInput, cmd = m.textInput.Update(msg)
	case StateView:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// open loads a cue sheet and switches to the viewing state.
func (m Model) open(path string) (tea.Model, tea.Cmd) {
	if path == "" {
		return m, nil
	}

	doc, err := document.New("", nil)
	if err == nil {
		err = doc.Load(path)
	}
	if err != nil {
		m.err = err
		return m, nil
	}

	listing, err := doc.ListTracks()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.path = path
	m.err = nil
	m.header = sheetHeader(doc.Sheet)
	m.state = StateView
	m.textInput.Blur()
	if m.ready {
		m.viewport.SetContent(listing)
		m.viewport.GotoTop()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Cue Sheet Viewer") + "\n")

	switch m.state {
	case StateInput:
		sb.WriteString(subtitleStyle.Render("Enter a cue sheet path:") + "\n\n")
		sb.WriteString(m.textInput.View() + "\n\n")
		if m.err != nil {
			sb.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n")
		}
		sb.WriteString(dimStyle.Render("enter: open · ctrl+c: quit"))

	case StateView:
		sb.WriteString(headerStyle.Render(m.header) + "\n")
		if m.ready {
			sb.WriteString(m.viewport.View() + "\n")
		}
		sb.WriteString(dimStyle.Render("↑/↓: scroll · esc: open another · q: quit"))
	}

	return sb.String()
}

// sheetHeader summarizes the sheet-level attributes for the view header.
func sheetHeader(sheet *model.CueSheet) string {
	var lines []string

	performer := sheet.Performer
	if performer == "" {
		performer = "(unknown performer)"
	}
	title := sheet.Title
	if title == "" {
		title = "(untitled)"
	}
	lines = append(lines, fmt.Sprintf("%s - %s", performer, title))

	if sheet.File != "" {
		lines = append(lines, fmt.Sprintf("FILE %s (%s)", sheet.File, sheet.FileType))
	}
	if sheet.Catalog != "" {
		lines = append(lines, "CATALOG "+sheet.Catalog)
	}
	lines = append(lines, fmt.Sprintf("%d tracks", len(sheet.Tracks)))

	return strings.Join(lines, "\n")
}
