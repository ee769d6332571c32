package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dwdecomp/cutmetric"
	"github.com/katalvlaran/dwdecomp/mpsfile"
)

func (c *CLI) metricsCommand() *cobra.Command {
	var (
		mpsPath       string
		graphKind     string
		partitionPath string
		configPath    string
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Score a node partition with mincut, SOED, and the k-metric",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			p, err := mpsfile.ReadFile(mpsPath)
			if err != nil {
				return err
			}
			g, err := buildGraph(graphKind, p, cfg)
			if err != nil {
				return err
			}

			fh, err := os.Open(partitionPath)
			if err != nil {
				return errors.Wrapf(err, "partition %s", partitionPath)
			}
			defer fh.Close()
			if err = g.ReadPartition(fh); err != nil {
				return errors.Wrapf(err, "partition %s", partitionPath)
			}
			c.Logger.Debug("partition loaded", "nodes", g.Graph().NNodes())

			m, err := cutmetric.All(g.Graph())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mincut   %g\n", m.Mincut)
			fmt.Fprintf(out, "soed     %g\n", m.SOED)
			fmt.Fprintf(out, "k-metric %g\n", m.KMetric)

			return nil
		},
	}

	cmd.Flags().StringVar(&mpsPath, "mps", "", "instance file in MPS format (required)")
	cmd.Flags().StringVar(&graphKind, "graph", "bipartite",
		"graph kind: bipartite, row, column, hyperrowcol, row-weighted")
	cmd.Flags().StringVar(&partitionPath, "partition", "", "partition file, one label per node (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config with weights and clustering knobs")
	_ = cmd.MarkFlagRequired("mps")
	_ = cmd.MarkFlagRequired("partition")

	return cmd
}
