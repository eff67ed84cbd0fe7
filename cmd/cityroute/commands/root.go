// Package commands implements the cityroute command line.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/config"
)

// flagKeys maps command-line flags onto configuration keys, so a flag set
// on the command line overrides the config file and the environment.
var flagKeys = map[string]string{
	"graph":         "graph",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"addr":          "server.addr",
	"read-timeout":  "server.read_timeout",
	"rows":          "generate.rows",
	"cols":          "generate.cols",
	"seed":          "generate.seed",
	"jitter":        "generate.jitter",
	"spacing":       "generate.spacing",
	"diagonal-prob": "generate.diagonal_prob",
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *slog.Logger
}

// Execute runs the CLI and exits non-zero on error. SIGINT and SIGTERM
// cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCommand builds a fresh command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	d := config.Default()

	root := &cobra.Command{
		Use:   "cityroute",
		Short: "Shortest routes between cities",
		Long: `cityroute - shortest-path routing over a city road map.

Load a NODES/ARCS graph file, then ask for routes, inspect it, locate
cities by pixel, generate synthetic maps or serve it all over HTTP.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	// Persistent Flags
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Path to a YAML config file")
	pf.String("graph", d.Graph, "Path to the NODES/ARCS graph file")
	pf.String("log-level", d.Log.Level, "Log level (debug, info, warn, error)")
	pf.String("log-format", d.Log.Format, "Log format (text, json)")

	root.AddCommand(
		a.routeCmd(),
		a.inspectCmd(),
		a.locateCmd(),
		a.generateCmd(),
		a.serveCmd(),
		a.configCmd(),
	)

	return root
}

// initConfig resolves defaults, config file, environment and flags, then
// builds the logger. Logs go to stderr so stdout stays machine-readable.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = config.NewLogger(cfg.Log, cmd.ErrOrStderr())

	return nil
}

// loadGraph loads the configured graph file.
func (a *app) loadGraph() (*citygraph.Graph, error) {
	if a.cfg.Graph == "" {
		return nil, errors.New("no graph file: pass --graph or set graph in the config")
	}
	g, err := citygraph.LoadFile(a.cfg.Graph)
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded", "file", a.cfg.Graph, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}

// out returns the command's stdout.
func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
