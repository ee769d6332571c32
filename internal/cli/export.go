package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dwdecomp/hypergraph"
	"github.com/katalvlaran/dwdecomp/incidence"
	"github.com/katalvlaran/dwdecomp/mpsfile"
	"github.com/katalvlaran/dwdecomp/problem"
)

// graphBuilder is the surface every incidence builder shares.
type graphBuilder interface {
	Graph() *hypergraph.Graph
	ReadPartition(r io.Reader) error
	WriteTo(w io.Writer, includeWeights bool) error
}

// buildGraph constructs and populates the requested graph kind.
func buildGraph(kind string, p *problem.Problem, cfg Config) (graphBuilder, error) {
	w := cfg.weights()
	switch kind {
	case "bipartite":
		b := incidence.NewBipartite()

		return b, b.Build(p, nil, nil, w)
	case "row":
		rg := incidence.NewRowGraph()

		return rg, rg.Build(p, nil, nil, w)
	case "column":
		cg := incidence.NewColumnGraph()

		return cg, cg.Build(p, nil, nil, w)
	case "hyperrowcol":
		hg := incidence.NewHyperrowcol()

		return hg, hg.Build(p, nil, nil, w)
	case "row-weighted":
		measure, wtype, err := cfg.measure()
		if err != nil {
			return nil, err
		}
		rg := incidence.NewRowGraphWeighted(measure, wtype)

		return rg, rg.Build(p, nil, nil, w)
	}

	return nil, errors.Errorf("unknown graph kind %q", kind)
}

func (c *CLI) exportCommand() *cobra.Command {
	var (
		mpsPath    string
		graphKind  string
		outPath    string
		withWeight bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build a structure-detection graph and write the partitioner file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			p, err := mpsfile.ReadFile(mpsPath)
			if err != nil {
				return err
			}
			c.Logger.Info("instance loaded", "name", p.Name, "vars", p.NVars(), "conss", p.NConss())

			g, err := buildGraph(graphKind, p, cfg)
			if err != nil {
				return err
			}
			c.Logger.Debug("graph built", "kind", graphKind,
				"nodes", g.Graph().NNodes(), "edges", g.Graph().NEdges())

			out := cmd.OutOrStdout()
			if outPath != "" {
				fh, cerr := os.Create(outPath)
				if cerr != nil {
					return errors.Wrapf(cerr, "create %s", outPath)
				}
				defer fh.Close()
				out = fh
			}

			return g.WriteTo(out, withWeight)
		},
	}

	cmd.Flags().StringVar(&mpsPath, "mps", "", "instance file in MPS format (required)")
	cmd.Flags().StringVar(&graphKind, "graph", "bipartite",
		"graph kind: bipartite, row, column, hyperrowcol, row-weighted")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&withWeight, "weights", false, "include node weights in the export")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config with weights and clustering knobs")
	_ = cmd.MarkFlagRequired("mps")

	return cmd
}
