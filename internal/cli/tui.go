package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/depdag/pkg/depdag"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// manualValue is the payload value set when a vertex is toggled on.
const manualValue = "manual"

// =============================================================================
// ExploreModel - Interactive resolution explorer
// =============================================================================

// ExploreModel is the bubbletea model for toggling payloads and watching
// resolution propagate through the graph. It mutates the graph in place.
type ExploreModel struct {
	Title  string
	Graph  *depdag.Graph[string]
	Cyclic bool
	Cursor int
	Height int
	Offset int

	vertices []*depdag.Vertex[string]
	original map[string]depdag.Payload
}

// NewExploreModel creates an explorer over g. The graph's current payloads
// are remembered so they can be restored with "r".
func NewExploreModel(title string, g *depdag.Graph[string]) ExploreModel {
	vs := g.Vertices()
	original := make(map[string]depdag.Payload, len(vs))
	for _, v := range vs {
		original[v.Name()] = v.Payload()
	}
	return ExploreModel{
		Title:    title,
		Graph:    g,
		Cyclic:   g.IsCyclic(),
		Height:   15,
		vertices: vs,
		original: original,
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.vertices)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space":
			m.toggle()
		case "r":
			m.reset()
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

// toggle clears the payload of the vertex under the cursor, or sets a plain
// value if it has none.
func (m ExploreModel) toggle() {
	if len(m.vertices) == 0 {
		return
	}
	v := m.vertices[m.Cursor]
	if v.HasPayload() {
		v.ClearPayload()
	} else {
		v.SetValue(manualValue)
	}
}

// reset restores every payload captured when the model was created.
func (m ExploreModel) reset() {
	for _, v := range m.vertices {
		v.SetPayload(m.original[v.Name()])
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle payload  r reset  q quit"))
	b.WriteString("\n\n")

	if len(m.vertices) == 0 {
		b.WriteString(listDimStyle.Render("  (empty graph)"))
		b.WriteString("\n")
		return b.String()
	}

	rows := vertexRows(m.Graph, m.Cyclic)
	b.WriteString(renderVertexTable(rows, m.Cursor, m.Offset, m.Height))
	b.WriteString("\n\n")

	resolved := 0
	for _, r := range rows {
		if r.Resolved {
			resolved++
		}
	}
	status := fmt.Sprintf("  [%d/%d]  %d resolved", m.Cursor+1, len(rows), resolved)
	if m.Cyclic {
		status = fmt.Sprintf("  [%d/%d]  cyclic graph, resolution unavailable", m.Cursor+1, len(rows))
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}
