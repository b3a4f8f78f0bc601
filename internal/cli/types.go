package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/nodes/builtin"
	"github.com/matzehuels/portwire/pkg/style"
)

// typesCommand lists the builtin data types and the converter matrix.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List data types and which ones can feed which",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			types := builtin.Types()
			st := style.Default()

			t := newTable("Type", "Name", "Colour")
			for _, dt := range types {
				t.Row(dt.ID, dt.Name, swatch(st.TypeColor(dt.ID)))
			}
			fmt.Fprintln(w, t.Render())

			fmt.Fprintln(w, StyleTitle.Render("Compatibility (row feeds column)"))
			fmt.Fprintln(w, compatibilityMatrix(c.Registry, types).Render())
			printDetail(w, "%s same type  %s converter  · incompatible", iconSame, iconArrow)
			return nil
		},
	}
}

// compatibilityMatrix renders one row per output type and one column per
// input type.
func compatibilityMatrix(reg *nodes.ModelRegistry, types []nodes.DataType) *table.Table {
	headers := []string{"out \\ in"}
	for _, dt := range types {
		headers = append(headers, dt.ID)
	}
	t := newTable(headers...)
	for _, out := range types {
		row := []string{out.ID}
		for _, in := range types {
			row = append(row, compatibilityCell(reg, out, in))
		}
		t.Row(row...)
	}
	return t
}

func compatibilityCell(reg *nodes.ModelRegistry, out, in nodes.DataType) string {
	switch {
	case out.Equal(in):
		return iconSame
	case reg.Compatible(out, in):
		return StyleSuccess.Render(iconArrow)
	default:
		return StyleDim.Render("·")
	}
}

// checkCommand answers whether an output type may feed an input type.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check OUT IN",
		Short: "Check whether an output type may feed an input type",
		Long: `Check whether an output port of type OUT may be connected to an input
port of type IN. The exit status is 0 when compatible and 1 otherwise.`,
		Example: "  portwire check integer float",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := lookupType(args[0])
			if err != nil {
				return err
			}
			in, err := lookupType(args[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case out.Equal(in):
				printSuccess(w, "%s %s %s: same type", out.ID, iconArrow, in.ID)
			case c.Registry.Compatible(out, in):
				printSuccess(w, "%s %s %s: via converter", out.ID, iconArrow, in.ID)
			default:
				printError(w, "%s %s %s: no converter", out.ID, iconArrow, in.ID)
				cmd.SilenceErrors = true
				return &ExitError{Code: 1, Err: errors.New(errors.ErrCodeIncompatibleTypes, "%s cannot feed %s", out, in)}
			}
			return nil
		},
	}
}

func lookupType(id string) (nodes.DataType, error) {
	if err := errors.ValidateTypeID(id); err != nil {
		return nodes.DataType{}, err
	}
	dt, ok := builtin.TypeByID(id)
	if !ok {
		return nodes.DataType{}, errors.New(errors.ErrCodeNotFound, "unknown data type %q", id)
	}
	return dt, nil
}
