package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridkit/pkg/pipeline"
)

// moveCommand creates the move command for repositioning items.
func (c *CLI) moveCommand() *cobra.Command {
	var (
		output           string
		id               string
		group            []string
		x, y             int
		compaction       string
		preventCollision bool
	)

	cmd := &cobra.Command{
		Use:   "move [layout.json]",
		Short: "Move an item or a rigid group to a new position",
		Long: `Move an item or a rigid group to a new position.

A single item (--id) pushes whatever it lands on out of the way, chains the
push through further collisions, and jumps past pinned items it cannot
displace. The layout is compacted afterwards unless the strategy is none.

A group (--ids) translates as a rigid formation: member offsets are
preserved, obstacles are pushed below or beside the whole block, and the
move is rejected outright when the target footprint overlaps a pinned item.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := pipeline.Op{
				Kind:             pipeline.OpMove,
				ID:               id,
				X:                x,
				Y:                y,
				Compaction:       compaction,
				PreventCollision: preventCollision,
				UserAction:       true,
			}
			if len(group) > 0 {
				op.Kind = pipeline.OpMoveGroup
				op.IDs = group
				op.ID = ""
			}
			return c.runOps(cmd.Context(), args[0], output, []pipeline.Op{op})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input, \"-\" for stdout)")
	cmd.Flags().StringVar(&id, "id", "", "item to move")
	cmd.Flags().StringSliceVar(&group, "ids", nil, "group members to move as a rigid formation")
	cmd.Flags().IntVarP(&x, "x", "x", 0, "target column")
	cmd.Flags().IntVarP(&y, "y", "y", 0, "target row")
	cmd.Flags().StringVar(&compaction, "compaction", "", "strategy override for this move")
	cmd.Flags().BoolVar(&preventCollision, "prevent-collision", false, "leave colliding neighbors in place")

	return cmd
}
