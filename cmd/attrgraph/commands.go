package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/attrgraph/builder"
	"github.com/katalvlaran/attrgraph/codec"
	"github.com/katalvlaran/attrgraph/core"
)

// stdinPath selects standard input / output instead of a file.
const stdinPath = "-"

// app carries the streams and shared flags of one CLI invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger

	verbose bool
	format  string
	jsonOut bool
	outPath string
}

// buildFlags are the knobs of the build subcommand.
type buildFlags struct {
	n, n2     int
	p         float64
	seed      int64
	ids       string
	prefix    string
	name      string
	weightMin float64
	weightMax float64
}

// newRootCmd wires all subcommands against the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "attrgraph",
		Short:        "Build and inspect attributed graphs",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging on stderr")
	root.PersistentFlags().StringVar(&a.format, "format", "",
		"Wire format: json or yaml (default: from file extension, json for stdin)")

	root.AddCommand(a.buildCmd(), a.statsCmd(), a.neighborsCmd(), a.subgraphCmd())

	return root
}

func (a *app) buildCmd() *cobra.Command {
	var f buildFlags
	cmd := &cobra.Command{
		Use:   "build TOPOLOGY",
		Short: "Generate a graph: path, cycle, star, wheel, complete, bipartite, grid, random",
		Long: `Generate a graph from a topology constructor and write it as a node-link document.

Examples:
  attrgraph build path --n 5
  attrgraph build bipartite --n 3 --n2 4 -o k34.yaml
  attrgraph build random --n 20 --p 0.2 --seed 7 --weight-min 1 --weight-max 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runBuild(args[0], f)
		},
	}
	cmd.Flags().IntVar(&f.n, "n", 5, "Number of nodes (left side for bipartite, rows for grid)")
	cmd.Flags().IntVar(&f.n2, "n2", 0, "Right side size for bipartite, columns for grid")
	cmd.Flags().Float64Var(&f.p, "p", 0.5, "Edge probability for random")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "RNG seed (0 = no RNG)")
	cmd.Flags().StringVar(&f.ids, "ids", "default", "Node ids: default, symbol, excel, prefix, uuid")
	cmd.Flags().StringVar(&f.prefix, "prefix", "v", "Prefix for --ids prefix")
	cmd.Flags().StringVar(&f.name, "name", "", "Graph name attribute")
	cmd.Flags().Float64Var(&f.weightMin, "weight-min", 0, "Lower bound of the random \"weight\" edge attribute")
	cmd.Flags().Float64Var(&f.weightMax, "weight-max", 0, "Upper bound of the random \"weight\" edge attribute")
	cmd.Flags().StringVarP(&a.outPath, "output", "o", stdinPath, "Output file")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print node, edge and self-loop counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			st := g.Stats()
			if a.jsonOut {
				return json.NewEncoder(a.out).Encode(st)
			}
			_, err = fmt.Fprintf(a.out, "name=%q nodes=%d edges=%d self-loops=%d\n",
				st.Name, st.NodeCount, st.EdgeCount, st.SelfLoopCount)

			return err
		},
	}
	cmd.Flags().BoolVar(&a.jsonOut, "json", false, "Output as JSON")

	return cmd
}

func (a *app) neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors FILE NODE",
		Short: "List a node's neighbors with edge attributes",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			nbrs, err := g.Neighbors(args[1])
			if err != nil {
				return err
			}
			for _, v := range nbrs {
				attrs, _ := g.EdgeAttrs(args[1], v) // v came from Neighbors
				if _, err = fmt.Fprintf(a.out, "%s\t%s\n", v, formatAttrs(attrs)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) subgraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subgraph FILE NODE...",
		Short: "Write the subgraph induced by the given nodes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			sub := g.Subgraph(args[1:]...)
			a.log.Debug("subgraph", "requested", len(args)-1, "nodes", sub.NodeCount(), "edges", sub.EdgeCount())

			return a.save(sub)
		},
	}
	cmd.Flags().StringVarP(&a.outPath, "output", "o", stdinPath, "Output file")

	return cmd
}

func (a *app) runBuild(topology string, f buildFlags) error {
	ctor, err := constructorFor(topology, f)
	if err != nil {
		return err
	}
	bopts, err := builderOptions(f)
	if err != nil {
		return err
	}
	var gopts []core.GraphOption[string]
	if f.name != "" {
		gopts = append(gopts, core.WithName[string](f.name))
	}

	g, err := builder.BuildGraph(gopts, bopts, ctor)
	if err != nil {
		return err
	}
	a.log.Debug("built", "topology", topology, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return a.save(g)
}

func constructorFor(topology string, f buildFlags) (builder.Constructor, error) {
	switch strings.ToLower(topology) {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "wheel":
		return builder.Wheel(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "bipartite":
		return builder.CompleteBipartite(f.n, f.n2), nil
	case "grid":
		return builder.Grid(f.n, f.n2), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", topology)
	}
}

func builderOptions(f buildFlags) ([]builder.BuilderOption, error) {
	var opts []builder.BuilderOption
	switch f.ids {
	case "", "default":
	case "symbol":
		opts = append(opts, builder.WithSymbolIDs())
	case "excel":
		opts = append(opts, builder.WithExcelColumnIDs())
	case "prefix":
		opts = append(opts, builder.WithPrefixIDs(f.prefix))
	case "uuid":
		opts = append(opts, builder.WithUUIDIDs(uuid.NameSpaceOID))
	default:
		return nil, fmt.Errorf("unknown id scheme %q", f.ids)
	}
	if f.seed != 0 {
		opts = append(opts, builder.WithSeed(f.seed))
	}
	if f.weightMax > f.weightMin {
		opts = append(opts, builder.WithEdgeAttrs(builder.UniformWeight("weight", f.weightMin, f.weightMax)))
	}

	return opts, nil
}

// resolveFormat picks --format, then the file extension, then JSON.
func (a *app) resolveFormat(path string) (codec.Format, error) {
	if a.format != "" {
		return codec.ParseFormat(a.format)
	}
	if path == stdinPath {
		return codec.FormatJSON, nil
	}

	return codec.FormatFromPath(path)
}

func (a *app) load(path string) (*core.Graph[string], error) {
	format, err := a.resolveFormat(path)
	if err != nil {
		return nil, err
	}
	r := a.in
	if path != stdinPath {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}
	g, err := codec.Decode[string](r, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	a.log.Debug("loaded", "path", path, "format", format, "nodes", g.NodeCount())

	return g, nil
}

func (a *app) save(g *core.Graph[string]) error {
	format, err := a.resolveFormat(a.outPath)
	if err != nil {
		return err
	}
	if a.outPath == stdinPath {
		return codec.Encode(a.out, g, format)
	}
	fh, err := os.Create(a.outPath)
	if err != nil {
		return err
	}
	if err = codec.Encode(fh, g, format); err != nil {
		_ = fh.Close()

		return err
	}
	a.log.Info("wrote", "path", a.outPath, "format", format)

	return fh.Close()
}

// formatAttrs renders attrs as sorted k=v pairs.
func formatAttrs(attrs core.Attrs) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, attrs[k])
	}

	return strings.Join(parts, " ")
}
