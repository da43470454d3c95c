// Command lvpath loads a labeled undirected graph from a nodes file and an
// edges file and prints the shortest path between two labels.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/dot"
	"github.com/katalvlaran/lvpath/internal/config"
	"github.com/katalvlaran/lvpath/internal/logging"
	"github.com/katalvlaran/lvpath/internal/ux"
	"github.com/katalvlaran/lvpath/loader"
	"github.com/katalvlaran/lvpath/prompt"
	"github.com/katalvlaran/lvpath/records"
	"github.com/katalvlaran/lvpath/route"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("lvpath version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("lvpath version %s-dev", version)
}

// errEndpointFlags is returned when only one of --start and --end is set.
var errEndpointFlags = errors.New("--start and --end must be given together")

type flags struct {
	config      string
	nodes       string
	edges       string
	start       string
	end         string
	algorithm   string
	labelPolicy string
	dot         bool
	logLevel    string
	logFormat   string
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:     "lvpath",
		Short:   "Shortest path between two labels of a node/edge file graph",
		Version: versionString(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &f, stdin, stdout, stderr)
		},
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", config.DefaultPath, "YAML config file")
	fl.StringVar(&f.nodes, "nodes", "", "nodes file, one `<key> <label>` per line (env: LVPATH_NODES)")
	fl.StringVar(&f.edges, "edges", "", "edges file, one `<key1> <key2> <label>` per line (env: LVPATH_EDGES)")
	fl.StringVar(&f.start, "start", "", "start label; prompts when unset")
	fl.StringVar(&f.end, "end", "", "end label; prompts when unset")
	fl.StringVar(&f.algorithm, "algorithm", "", "search engine: bfs|dijkstra (env: LVPATH_ALGORITHM)")
	fl.StringVar(&f.labelPolicy, "label-policy", "", "duplicate labels: last-wins|first-wins|reject (env: LVPATH_LABEL_POLICY)")
	fl.BoolVar(&f.dot, "dot", false, "print the graph in DOT syntax after loading (env: LVPATH_DOT)")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (env: LVPATH_LOG_LEVEL)")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: text|json (env: LVPATH_LOG_FORMAT)")

	return cmd
}

// overrides turns the flags the user set into config overrides.
func overrides(cmd *cobra.Command, f *flags) []config.Override {
	var out []config.Override
	set := func(name string, apply config.Override) {
		if cmd.Flags().Changed(name) {
			out = append(out, apply)
		}
	}
	set("nodes", func(c *config.Config) { c.Nodes = f.nodes })
	set("edges", func(c *config.Config) { c.Edges = f.edges })
	set("algorithm", func(c *config.Config) { c.Algorithm = f.algorithm })
	set("label-policy", func(c *config.Config) { c.LabelPolicy = f.labelPolicy })
	set("dot", func(c *config.Config) { c.DOT = f.dot })
	set("log-level", func(c *config.Config) { c.LogLevel = f.logLevel })
	set("log-format", func(c *config.Config) { c.LogFormat = f.logFormat })

	return out
}

func run(cmd *cobra.Command, f *flags, stdin io.Reader, stdout, stderr io.Writer) error {
	ctx := cmd.Context()

	cfg, err := config.Load(f.config, cmd.Flags().Changed("config"), overrides(cmd, f)...)
	if err != nil {
		return err
	}
	log := logging.NewWithOutput(stderr, cfg.LogLevel, cfg.LogFormat)
	out := ux.NewPrinter(stdout)

	var provider prompt.Provider
	switch startSet, endSet := cmd.Flags().Changed("start"), cmd.Flags().Changed("end"); {
	case startSet && endSet:
		provider = prompt.Static{Start: f.start, End: f.end}
	case startSet || endSet:
		return errEndpointFlags
	default:
		provider = prompt.NewLineProvider(stdin, stdout)
	}

	policy, err := loader.ParsePolicy(cfg.LabelPolicy)
	if err != nil {
		return err
	}
	algo, err := route.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	out.Progress("Reading nodes from %s...", cfg.Nodes)
	out.Progress("Reading edges from %s...", cfg.Edges)
	net, err := loader.Load(records.FileSource{}, cfg.Nodes, cfg.Edges,
		loader.WithLogger(log),
		loader.WithLabelPolicy(policy),
	)
	if err != nil {
		return err
	}
	out.Progress("Number of nodes: %d", net.Graph.VertexCount())
	out.Progress("Number of edges: %d", net.Graph.EdgeCount())
	out.Progress("Connected components: %d", net.Report.Components)
	if skipped := net.Report.NodesSkipped + net.Report.EdgesSkipped; skipped > 0 {
		out.Progress("Skipped lines: %d", skipped)
	}
	if cfg.DOT {
		out.Raw(dot.Render(net.Graph))
	}

	finder, err := route.NewFinder(net, route.WithLogger(log), route.WithAlgorithm(algo))
	if err != nil {
		return err
	}

	start, end, err := provider.Endpoints(ctx)
	if err != nil {
		return err
	}

	r, err := finder.Find(ctx, start, end)
	msg, ok := route.Message(start, end, r, err)
	if !ok {
		return err
	}
	if err != nil {
		out.Notice(msg)
		return nil
	}
	out.Result(msg)

	return nil
}
