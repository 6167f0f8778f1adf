package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pableur/symnav/docblock"
	"github.com/pableur/symnav/symbol"
)

var (
	previewBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	previewMarkStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

type pickerItem struct {
	loc symbol.Location
}

func (i pickerItem) Title() string       { return i.loc.Label() }
func (i pickerItem) Description() string { return i.loc.Path }
func (i pickerItem) FilterValue() string { return i.loc.DisplayPath }

// pickerModel is the quick-panel equivalent: an ordered location list on the
// left, a transient preview of the highlighted entry on the right. Enter
// commits, escape cancels without touching anything.
type pickerModel struct {
	list      list.Model
	preview   viewport.Model
	locations []symbol.Location
	selected  int
	cancelled bool
}

func newPickerModel(sym string, locations []symbol.Location) pickerModel {
	items := make([]list.Item, 0, len(locations))
	for _, loc := range locations {
		items = append(items, pickerItem{loc: loc})
	}
	l := list.New(items, list.NewDefaultDelegate(), 40, 14)
	l.Title = "Definitions of " + sym
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	m := pickerModel{
		list:      l,
		preview:   viewport.New(60, 14),
		locations: locations,
		selected:  -1,
	}
	m.loadPreview(0)
	return m
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		half := msg.Width / 2
		m.list.SetSize(half, msg.Height-2)
		m.preview.Width = msg.Width - half - 4
		m.preview.Height = msg.Height - 4
		m.loadPreview(m.list.Index())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.selected = m.list.Index()
			return m, tea.Quit
		case "esc", "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.loadPreview(m.list.Index())
	}
	return m, cmd
}

func (m *pickerModel) loadPreview(idx int) {
	if idx < 0 || idx >= len(m.locations) {
		return
	}
	loc := m.locations[idx]
	src, err := docblock.LoadFile(loc.Path)
	if err != nil {
		m.preview.SetContent(fmt.Sprintf("cannot preview %s: %v", loc.DisplayPath, err))
		return
	}
	const contextLines = 8
	start := loc.Row - 1 - contextLines
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	for n := start; n <= start+2*contextLines; n++ {
		line, ok := src.Line(n)
		if !ok {
			break
		}
		text := fmt.Sprintf("%4d %s", n+1, line)
		if n == loc.Row-1 {
			text = previewMarkStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	m.preview.SetContent(b.String())
}

func (m pickerModel) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.list.View(),
		previewBorderStyle.Render(m.preview.View()),
	)
}

// tuiPicker satisfies navigate.Picker by running the picker program to
// completion. A negative index means the user backed out.
type tuiPicker struct{}

func (tuiPicker) Pick(sym string, locations []symbol.Location) (int, error) {
	program := tea.NewProgram(newPickerModel(sym, locations), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return -1, err
	}
	m, ok := final.(pickerModel)
	if !ok || m.cancelled {
		return -1, nil
	}
	return m.selected, nil
}
