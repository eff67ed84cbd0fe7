package commands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cityroute/config"
	"github.com/katalvlaran/cityroute/server"
)

func (a *app) serveCmd() *cobra.Command {
	d := config.Default()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve routes over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			srv, err := server.New(g,
				server.WithLogger(a.log),
				server.WithRegistry(reg),
				server.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.ShutdownTimeout),
			)
			if err != nil {
				return err
			}

			return srv.ListenAndServe(cmd.Context(), a.cfg.Server.Addr)
		},
	}
	cmd.Flags().String("addr", d.Server.Addr, "Listen address")
	cmd.Flags().Duration("read-timeout", d.Server.ReadTimeout, "HTTP read timeout")

	return cmd
}
