package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/depdag/pkg/depdag"
)

// vertexRow is one line of the vertex status table.
type vertexRow struct {
	Name       string
	Kind       depdag.PayloadKind
	Provided   bool
	Resolved   bool
	Known      bool // false when resolution was not computed (cyclic graph)
	Supporters []string
}

// vertexRows snapshots every vertex of g in insertion order. Resolution is
// only computed when cyclic is false.
func vertexRows(g *depdag.Graph[string], cyclic bool) []vertexRow {
	rows := make([]vertexRow, 0, g.Len())
	for v := range g.All() {
		r := vertexRow{
			Name:       v.Name(),
			Kind:       v.Payload().Kind(),
			Provided:   v.HasPayload(),
			Supporters: depdag.VertexNames(v.DirectSupporters()),
		}
		if !cyclic {
			r.Resolved = v.IsResolved()
			r.Known = true
		}
		rows = append(rows, r)
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (r vertexRow) cells() []string {
	resolved := "—"
	if r.Known {
		resolved = yesNo(r.Resolved)
	}
	supporters := "—"
	if len(r.Supporters) > 0 {
		supporters = strings.Join(r.Supporters, ", ")
	}
	return []string{r.Name, r.Kind.String(), yesNo(r.Provided), resolved, supporters}
}

// renderVertexTable renders rows[offset:offset+height] as a bordered table.
// When cursor is non-negative a leading marker column highlights that row.
func renderVertexTable(rows []vertexRow, cursor, offset, height int) string {
	end := min(offset+height, len(rows))
	visible := rows[offset:end]

	headers := []string{"Vertex", "Payload", "Provided", "Resolved", "Supporters"}
	if cursor >= 0 {
		headers = append([]string{""}, headers...)
	}

	cells := make([][]string, 0, len(visible))
	for i, r := range visible {
		row := r.cells()
		if cursor >= 0 {
			marker := "  "
			if offset+i == cursor {
				marker = "▸ "
			}
			row = append([]string{marker}, row...)
		}
		cells = append(cells, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	resolvedCol := 3
	if cursor >= 0 {
		resolvedCol++
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := offset + row
			if idx >= len(rows) {
				return lipgloss.NewStyle()
			}
			r := rows[idx]

			base := lipgloss.NewStyle().Padding(0, 1)
			if idx == cursor {
				base = base.Bold(true)
			}
			switch {
			case col == resolvedCol && !r.Known:
				return base.Foreground(colorDim)
			case col == resolvedCol && r.Resolved:
				return base.Foreground(colorGreen)
			case col == resolvedCol:
				return base.Foreground(colorRed)
			case idx == cursor:
				return base.Foreground(colorCyan)
			}
			return base
		})

	return t.Render()
}
