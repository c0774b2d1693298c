package cli

import (
	"github.com/spf13/cobra"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/pipeline"
)

// resizeCommand creates the resize command for changing item dimensions.
func (c *CLI) resizeCommand() *cobra.Command {
	var (
		output           string
		id               string
		x, y, w, h       int
		behavior         string
		compaction       string
		preventCollision bool
	)

	cmd := &cobra.Command{
		Use:   "resize [layout.json]",
		Short: "Resize an item, pushing or shrinking its neighbors",
		Long: `Resize an item, pushing or shrinking its neighbors.

The new size is clamped to the item's size bounds and to the grid's slot
count. Neighbors overlapped by the growth are pushed along the compaction
axis (--behavior push) or shrunk in place when they have room to give
(--behavior shrink); a neighbor that cannot shrink is pushed instead.
Growth onto a pinned item relocates the resized item to the nearest free
position at its new size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}
			cur, ok := findItem(doc, id)
			if !ok {
				return gkerrors.New(gkerrors.ErrCodeMissingID, "no item %q in %s", id, args[0])
			}
			// Unset geometry flags keep the item's current values.
			if !cmd.Flags().Changed("x") {
				x = cur.X
			}
			if !cmd.Flags().Changed("y") {
				y = cur.Y
			}
			if !cmd.Flags().Changed("width") {
				w = cur.W
			}
			if !cmd.Flags().Changed("height") {
				h = cur.H
			}
			op := pipeline.Op{
				Kind:             pipeline.OpResize,
				ID:               id,
				X:                x,
				Y:                y,
				W:                w,
				H:                h,
				Behavior:         behavior,
				Compaction:       compaction,
				PreventCollision: preventCollision,
			}
			return c.applyAndWrite(cmd.Context(), doc, args[0], output, []pipeline.Op{op})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input, \"-\" for stdout)")
	cmd.Flags().StringVar(&id, "id", "", "item to resize")
	cmd.Flags().IntVarP(&x, "x", "x", 0, "new column")
	cmd.Flags().IntVarP(&y, "y", "y", 0, "new row")
	cmd.Flags().IntVarP(&w, "width", "w", 0, "new width in slots")
	cmd.Flags().IntVar(&h, "height", 0, "new height in rows")
	cmd.Flags().StringVar(&behavior, "behavior", "push", "collision resolution: push, shrink")
	cmd.Flags().StringVar(&compaction, "compaction", "", "strategy override for this resize")
	cmd.Flags().BoolVar(&preventCollision, "prevent-collision", false, "leave colliding neighbors in place")

	return cmd
}
