// internal/tui/explore.go
// Package tui provides the interactive terminal browser for the tool catalogue.
package tui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/hkomcp/internal/registry"
	"github.com/mwiater/hkomcp/internal/util"
)

// viewState represents the current screen.
type viewState int

const (
	// viewToolList shows the filterable tool list.
	viewToolList viewState = iota
	// viewToolDetail shows one tool's description and schema.
	viewToolDetail
)

// ToolSource is the part of the registry the browser reads.
type ToolSource interface {
	Tools() []registry.Tool
}

// item represents a tool in the list.
type item struct {
	tool registry.Tool
}

// Title returns the tool name.
func (i item) Title() string { return i.tool.Name }

// Description returns the first sentence of the tool description.
func (i item) Description() string { return util.FirstSentence(i.tool.Description) }

// FilterValue returns the tool name, used for filtering.
func (i item) FilterValue() string { return i.tool.Name }

type model struct {
	state         viewState
	toolList      list.Model
	selected      registry.Tool
	width, height int
}

func initialModel(src ToolSource) *model {
	tools := src.Tools()
	items := make([]list.Item, len(tools))
	for i, t := range tools {
		items[i] = item{tool: t}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Hong Kong Observatory tools"
	return &model{state: viewToolList, toolList: l}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.toolList.SetSize(msg.Width-4, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.state == viewToolDetail {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "esc", "enter", "backspace":
				m.state = viewToolList
			}
			return m, nil
		}
		if m.toolList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "enter":
				if it, ok := m.toolList.SelectedItem().(item); ok {
					m.selected = it.tool
					m.state = viewToolDetail
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.toolList, cmd = m.toolList.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.state == viewToolDetail {
		return m.detailView()
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(m.toolList.View())
}

func (m *model) detailView() string {
	width := max(m.width-6, 20)
	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	boxStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1).Width(width)
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(" (esc to go back, q to quit)")

	var b strings.Builder
	b.WriteString(util.WrapToWidth(m.selected.Description, width-2))
	b.WriteString("\n\n")
	b.WriteString(prettySchema(m.selected.Schema))

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(m.selected.Name)+help,
		boxStyle.Render(b.String()),
	)
}

func prettySchema(schema json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, schema, "", "  "); err != nil {
		return string(schema)
	}
	return buf.String()
}

// Explore runs the browser until the user quits.
func Explore(src ToolSource) error {
	_, err := tea.NewProgram(initialModel(src), tea.WithAltScreen()).Run()
	return err
}
