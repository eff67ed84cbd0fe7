package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/display"
)

func (a *app) locateCmd() *cobra.Command {
	var (
		x, y, tol float64
	)
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Find the city drawn at a pixel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			p := citygraph.Point{X: x, Y: y}
			n, ok := display.NodeAtWithin(g, p, tol)
			if !ok {
				return fmt.Errorf("no city within %g of %s", tol, p)
			}
			fmt.Fprintf(out(cmd), "%s %s\n", n.Label, n.Location)

			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "Pixel x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "Pixel y coordinate")
	cmd.Flags().Float64Var(&tol, "tolerance", display.PixelTolerance, "Half-width of the hit box in pixels")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
