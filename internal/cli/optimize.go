package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridkit/pkg/schema"
)

// optimizeCommand creates the optimize command for defragmenting layouts.
func (c *CLI) optimizeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "optimize [layout.json]",
		Short: "Defragment a layout by re-placing items into the earliest gaps",
		Long: `Defragment a layout by re-placing items into the earliest gaps.

Items are taken in visual order and each one moves to the first position,
scanning row by row, where it fits among the items already re-placed.
Pinned items keep their positions and act as obstacles. The result is
cached by content, so repeated runs on an unchanged layout are free.`,
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

			spinner := newSpinnerWithContext(cmd.Context(), "Optimizing layout...")
			spinner.Start()
			optimized, hit, err := runner.Optimize(cmd.Context(), l, doc.Slots)
			if err != nil {
				spinner.StopWithError("Optimize failed")
				return fmt.Errorf("optimize layout: %w", err)
			}
			spinner.Stop()
			if spinner.Cancelled() {
				return cmd.Context().Err()
			}

			doc.Items = schema.FromLayout(optimized)
			doc.UpdatedAt = time.Now().UTC()

			path, err := writeDocument(doc, args[0], output)
			if err != nil {
				return err
			}
			if path != "" {
				printSuccess("Layout optimized")
				printFile(path)
				printStats(len(doc.Items), doc.Slots, hit)
				printNewline()
				printNextStep("Render", "gridkit render "+path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input, \"-\" for stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
