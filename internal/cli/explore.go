package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/nodes/builtin"
)

var (
	cellCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Reverse(true)
	axisActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand starts the interactive compatibility matrix.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Browse type compatibility interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := NewExploreModel(c.Registry, builtin.Types())
			_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// ExploreModel - Interactive compatibility matrix
// =============================================================================

// ExploreModel is the bubbletea model for the compatibility matrix. Rows are
// output types, columns input types.
type ExploreModel struct {
	Registry *nodes.ModelRegistry
	Types    []nodes.DataType
	Out      int
	In       int
}

// NewExploreModel creates a matrix over types.
func NewExploreModel(reg *nodes.ModelRegistry, types []nodes.DataType) ExploreModel {
	return ExploreModel{Registry: reg, Types: types}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	last := len(m.Types) - 1
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.Out = max(m.Out-1, 0)
	case "down", "j":
		if m.Out < last {
			m.Out++
		}
	case "left", "h":
		m.In = max(m.In-1, 0)
	case "right", "l":
		if m.In < last {
			m.In++
		}
	case "s":
		m.Out, m.In = m.In, m.Out
	}
	return m, nil
}

// Verdict describes the selected pair.
func (m ExploreModel) Verdict() string {
	if len(m.Types) == 0 {
		return "no types registered"
	}
	out, in := m.Types[m.Out], m.Types[m.In]
	switch {
	case out.Equal(in):
		return fmt.Sprintf("%s %s %s: same type, connects directly", out, iconArrow, in)
	case m.Registry.Compatible(out, in):
		return fmt.Sprintf("%s %s %s: connects through a converter", out, iconArrow, in)
	default:
		return fmt.Sprintf("%s %s %s: incompatible, the drop is refused", out, iconArrow, in)
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Type Compatibility"))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("↑/↓ output type  ←/→ input type  s swap  q quit"))
	b.WriteString("\n\n")

	headers := []string{"out \\ in"}
	for i, dt := range m.Types {
		h := dt.ID
		if i == m.In {
			h = axisActiveStyle.Render(h)
		}
		headers = append(headers, h)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return base.Inherit(styleHeader)
			case row == m.Out && col == m.In+1:
				return base.Inherit(cellCursorStyle)
			case row == m.Out && col == 0:
				return base.Inherit(axisActiveStyle)
			}
			return base
		})

	for _, out := range m.Types {
		row := []string{out.ID}
		for _, in := range m.Types {
			row = append(row, compatibilityCell(m.Registry, out, in))
		}
		t.Row(row...)
	}

	b.WriteString(t.Render())
	b.WriteString("\n\n  ")
	b.WriteString(StyleValue.Render(m.Verdict()))
	b.WriteString("\n")
	return b.String()
}
