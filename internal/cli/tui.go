package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Indusoptima/plotsync-sub001/pkg/pipeline"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// VariationListModel - Interactive variation selection
// =============================================================================

// VariationListModel is the bubbletea model for picking one of the solved
// variations. Variations arrive best first; enter selects, q keeps the best.
type VariationListModel struct {
	Variations []pipeline.Variation
	Cursor     int
	Selected   *pipeline.Variation
}

// NewVariationListModel creates a new variation list model.
func NewVariationListModel(variations []pipeline.Variation) VariationListModel {
	return VariationListModel{Variations: variations}
}

func (m VariationListModel) Init() tea.Cmd {
	return nil
}

func (m VariationListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Variations)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Variations[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m VariationListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Variation"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q keep best"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, v := range m.Variations {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		verdict := StyleSuccess.Render("valid")
		if !v.Report.FinalValid {
			verdict = StyleWarning.Render(fmt.Sprintf("%d error(s)", v.Report.ErrorCount()))
		}

		note := ""
		if v.TimedOut {
			note = "timed out"
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", v.Seed),
			fmt.Sprintf("%.4f", v.Cost),
			fmt.Sprintf("%d/%d", v.Accepted, v.Iterations),
			verdict,
			note,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Seed", "Cost", "Accepted", "Validation", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return lipgloss.NewStyle().Bold(true)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Variations))))

	return b.String()
}
