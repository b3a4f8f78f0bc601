package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/portwire/pkg/nodes"
)

// modelsCommand lists registered models grouped by category.
func (c *CLI) modelsCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List registered node models by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			categories := c.Registry.Categories()
			if category != "" {
				categories = []string{category}
			}

			t := newTable("Category", "Model", "Inputs", "Outputs")
			n := 0
			for _, cat := range categories {
				for _, name := range c.Registry.NamesIn(cat) {
					m, _ := c.Registry.Create(name)
					t.Row(cat, name, portList(m, nodes.PortIn), portList(m, nodes.PortOut))
					n++
				}
			}
			if n == 0 {
				printWarning(w, "no models in category %q", category)
				return nil
			}
			fmt.Fprintln(w, t.Render())
			printDetail(w, "%d models in %d categories", n, len(categories))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list models in this category")
	return cmd
}

// portList formats a model's port types on one side, or "-" when it declares
// none or does not describe its ports.
func portList(m nodes.NodeModel, pt nodes.PortType) string {
	pm, ok := m.(nodes.PortedModel)
	if !ok || pm.NumPorts(pt) == 0 {
		return "-"
	}
	ids := make([]string, pm.NumPorts(pt))
	for i := range ids {
		ids[i] = pm.PortDataType(pt, i).ID
	}
	return strings.Join(ids, ", ")
}
