package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridkit/pkg/pipeline"
)

// compactCommand creates the compact command for re-packing a layout.
func (c *CLI) compactCommand() *cobra.Command {
	var (
		output     string
		compaction string
	)

	cmd := &cobra.Command{
		Use:   "compact [layout.json]",
		Short: "Re-pack a layout with a compaction strategy",
		Long: `Re-pack a layout with a compaction strategy.

Items slide toward the packing edge (row 0 for vertical strategies, column 0
for horizontal ones) without reordering or overlapping. Pinned items stay
where they are and everything else flows around them.

Strategies: vertical (default), horizontal, fast-vertical, fast-horizontal,
none. The fast variants trade exact crawl placement for a linear sweep.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := pipeline.Op{Kind: pipeline.OpCompact, Compaction: compaction}
			return c.runOps(cmd.Context(), args[0], output, []pipeline.Op{op})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input, \"-\" for stdout)")
	cmd.Flags().StringVar(&compaction, "compaction", "", "strategy: vertical, horizontal, fast-vertical, fast-horizontal, none")

	return cmd
}
