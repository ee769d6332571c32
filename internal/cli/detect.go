package cli

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dwdecomp/aggregation"
	"github.com/katalvlaran/dwdecomp/decfile"
	"github.com/katalvlaran/dwdecomp/decomp"
	"github.com/katalvlaran/dwdecomp/mpsfile"
	"github.com/katalvlaran/dwdecomp/problem"
)

func (c *CLI) detectCommand() *cobra.Command {
	var (
		mpsPath      string
		decPath      string
		blkPath      string
		masterRegex  string
		stairlinking bool
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Build a decomposition, aggregate identical blocks, and report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := mpsfile.ReadFile(mpsPath)
			if err != nil {
				return err
			}
			c.Logger.Info("instance loaded", "name", p.Name, "vars", p.NVars(), "conss", p.NConss())

			d, err := c.buildDecomposition(p, decPath, blkPath, masterRegex)
			if err != nil {
				return err
			}
			if stairlinking {
				moved, serr := d.AssignStairlinking(p)
				if serr != nil {
					return serr
				}
				c.Logger.Debug("stairlinking assigned", "moved", moved)
			}

			info, err := aggregation.Aggregate(p, d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type          %s\n", d.Type())
			fmt.Fprintf(out, "blocks        %d\n", d.NBlocks())
			fmt.Fprintf(out, "linking conss %d\n", d.NLinkingConss())
			fmt.Fprintf(out, "linking vars  %d\n", d.NLinkingVars())
			for b := 0; b < d.NBlocks(); b++ {
				conss, _ := d.BlockConss(b)
				vars, _ := d.BlockVars(b)
				if info.IsPricingRelevant(b) {
					fmt.Fprintf(out, "block %-4d conss %-5d vars %-5d multiplicity %d\n",
						b, len(conss), len(vars), info.NIdentical(b))
				} else {
					fmt.Fprintf(out, "block %-4d conss %-5d vars %-5d aggregated into %d\n",
						b, len(conss), len(vars), info.Representative(b))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mpsPath, "mps", "", "instance file in MPS format (required)")
	cmd.Flags().StringVar(&decPath, "dec", "", "decomposition file (.dec)")
	cmd.Flags().StringVar(&blkPath, "blk", "", "block file (.blk)")
	cmd.Flags().StringVar(&masterRegex, "masterconss", "",
		"regex over constraint names; matches become the master")
	cmd.Flags().BoolVar(&stairlinking, "stairlinking", false,
		"reclassify linking variables shared by consecutive blocks")
	_ = cmd.MarkFlagRequired("mps")
	cmd.MarkFlagsOneRequired("dec", "blk", "masterconss")
	cmd.MarkFlagsMutuallyExclusive("dec", "blk", "masterconss")

	return cmd
}

// buildDecomposition resolves the one configured source into a
// decomposition.
func (c *CLI) buildDecomposition(p *problem.Problem, decPath, blkPath, masterRegex string) (*decomp.Decomposition, error) {
	switch {
	case decPath != "":
		f, err := decfile.ReadDecFile(decPath)
		if err != nil {
			return nil, err
		}

		return f.Apply(p)
	case blkPath != "":
		f, err := decfile.ReadBlkFile(blkPath)
		if err != nil {
			return nil, err
		}

		return f.Apply(p)
	}

	re, err := regexp.Compile(masterRegex)
	if err != nil {
		return nil, errors.Wrapf(err, "masterconss pattern %q", masterRegex)
	}
	var master []int
	for ci := range p.Conss {
		if re.MatchString(p.Conss[ci].Name) {
			master = append(master, ci)
		}
	}
	c.Logger.Debug("master constraints matched", "count", len(master))

	return decomp.FromMasterConss(p, master)
}
