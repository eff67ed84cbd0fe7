package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/display"
)

func (a *app) routeCmd() *cobra.Command {
	var (
		from, to     string
		showSegments bool
	)
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the shortest route between two cities",
		Example: `  cityroute route --graph california.txt --from SanFrancisco --to LosAngeles
  cityroute route --graph california.txt --from Oakland --to Fresno --segments`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			e, err := dijkstra.New(g, dijkstra.WithLogger(a.log.With("query_id", uuid.NewString())))
			if err != nil {
				return err
			}
			path, err := e.ComputeShortestPathByLabel(from, to)
			if err != nil {
				return err
			}

			w := out(cmd)
			if len(path) == 0 {
				fmt.Fprintf(w, "no path from %s to %s\n", from, to)
				return nil
			}
			labels := g.Labels()
			names := make([]string, len(path))
			for i, v := range path {
				names[i] = labels[v]
			}
			fmt.Fprintf(w, "path: %s\n", strings.Join(names, " -> "))
			fmt.Fprintf(w, "cost: %d\n", e.Cost())

			if showSegments {
				segs, err := display.Path(e)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "segments:")
				for _, s := range segs {
					fmt.Fprintf(w, "  %s -> %s\n", s.From, s.To)
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Label of the start city")
	cmd.Flags().StringVar(&to, "to", "", "Label of the destination city")
	cmd.Flags().BoolVar(&showSegments, "segments", false, "Also print the route as drawable segments")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
