package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/radiobutton/pkg/layoutdef"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Load a layout definition and print its radio controls",
		Long: `Decode a YAML layout definition, build a control for every
RadioButton view and print the resulting geometry and colors. Views of
other classes are reported and skipped.

Examples:
  radiodemo inspect layouts/plans.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := layoutdef.Load(args[0])
			if err != nil {
				return err
			}
			radios, err := doc.Build()
			if err != nil {
				return err
			}
			a.log.Debug("%s: schema %s, %d views, %d radios", args[0], doc.Schema, len(doc.Views), len(radios))
			printRadios(cmd.OutOrStdout(), radios)
			return nil
		},
	}
}

func printRadios(w io.Writer, radios []layoutdef.Radio) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-16s %-20s %8s %8s %-10s %-10s",
		"ID", "FRAME", "DIAMETER", "INNER", "SELECTED", "DESELECTED")))
	for _, r := range radios {
		c := r.Control
		frame := fmt.Sprintf("%g,%g %gx%g", r.Frame.Left, r.Frame.Top, r.Frame.Width(), r.Frame.Height())
		fmt.Fprintf(w, "%-16s %-20s %8.2f %8.2f %-10s %-10s\n",
			r.ID, frame, c.Diameter(), c.InnerDiameter(), c.SelectedColor().Hex(), c.DeselectedColor().Hex())
	}
}
