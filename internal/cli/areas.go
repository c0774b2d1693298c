package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// areasCommand creates the areas command for listing free rectangles.
func (c *CLI) areasCommand() *cobra.Command {
	var (
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "areas [layout.json]",
		Short: "List the maximal free rectangles in a layout",
		Long: `List the maximal free rectangles in a layout.

A free rectangle is a fully unoccupied region within the grid's slots and
the layout's occupied rows. Only maximal rectangles are reported: each one
cannot grow in any direction without hitting an item or the grid edge.
Rectangles may overlap each other.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}
			l, err := doc.Layout()
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			areas, hit, err := runner.FreeAreas(cmd.Context(), l, doc.Slots)
			if err != nil {
				return fmt.Errorf("find free areas: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(areas)
			}

			if len(areas) == 0 {
				printInfo("No free areas")
				return nil
			}
			for _, a := range areas {
				fmt.Printf("%dx%d at (%d,%d)\n", a.W, a.H, a.X, a.Y)
			}
			printStats(len(doc.Items), doc.Slots, hit)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the rectangles as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
