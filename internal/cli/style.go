package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/portwire/pkg/style"
)

// styleCommand prints the effective connection style as TOML.
func (c *CLI) styleCommand() *cobra.Command {
	var (
		path  string
		check bool
	)

	cmd := &cobra.Command{
		Use:   "style",
		Short: "Print the connection style as TOML",
		Long: `Print the connection style as TOML. Without --style (or $PORTWIRE_STYLE)
this is the default style, a convenient starting point for a custom file:

  portwire style > mystyle.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			p := stylePath(path)

			st := style.Default()
			if p != "" {
				loaded, err := style.Load(p)
				if err != nil {
					return err
				}
				st = loaded
				c.Logger.Debug("loaded style", "path", p)
			}

			if check {
				if p == "" {
					printInfo(w, "no style file given; the default style is valid")
					return nil
				}
				printSuccess(w, "%s is valid", p)
				return nil
			}
			if err := st.Encode(w); err != nil {
				return fmt.Errorf("encode style: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "style", "s", "", "style file (default $PORTWIRE_STYLE)")
	cmd.Flags().BoolVar(&check, "check", false, "only validate the style file")
	return cmd
}
