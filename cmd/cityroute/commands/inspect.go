package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/bfs"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Summarise a graph: cities, roads and connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			comps := bfs.Components(g)
			labels := g.Labels()

			w := out(cmd)
			fmt.Fprintf(w, "nodes: %d\n", g.NodeCount())
			fmt.Fprintf(w, "edges: %d\n", g.EdgeCount())
			fmt.Fprintf(w, "components: %d\n", len(comps))
			for i, comp := range comps {
				names := make([]string, len(comp))
				for j, id := range comp {
					names[j] = labels[id]
				}
				fmt.Fprintf(w, "  %d: %s\n", i+1, strings.Join(names, " "))
			}

			return nil
		},
	}
}
