package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/pipeline"
	"github.com/matzehuels/gridkit/pkg/schema"
)

// placeCommand creates the place command for adding new items to a layout.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		output    string
		itemsFile string
		sizes     []string
	)

	cmd := &cobra.Command{
		Use:   "place [layout.json]",
		Short: "Add new items below the existing content",
		Long: `Add new items below the existing content.

New items without coordinates are auto-placed: the grid is scanned row by
row starting below the current content and each item takes the first
position where it fits. Items with explicit coordinates keep them.

Items come from a JSON file (--items, an array of item objects) or from
one or more --size WxH flags for quick anonymous blocks. Items that arrive
without an id are assigned a generated one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := collectNewItems(itemsFile, sizes)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return gkerrors.New(gkerrors.ErrCodeInvalidOperation, "place needs --items or --size")
			}
			op := pipeline.Op{Kind: pipeline.OpPlace, Items: items}
			return c.runOps(cmd.Context(), args[0], output, []pipeline.Op{op})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input, \"-\" for stdout)")
	cmd.Flags().StringVar(&itemsFile, "items", "", "JSON file with an array of items to place")
	cmd.Flags().StringSliceVar(&sizes, "size", nil, "new auto-placed item as WxH (repeatable)")

	return cmd
}

// collectNewItems merges file-sourced and size-flag items, assigning
// generated ids where missing.
func collectNewItems(itemsFile string, sizes []string) ([]schema.Item, error) {
	var items []schema.Item

	if itemsFile != "" {
		data, err := os.ReadFile(itemsFile)
		if err != nil {
			return nil, fmt.Errorf("read items %s: %w", itemsFile, err)
		}
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, gkerrors.Wrap(gkerrors.ErrCodeInvalidFormat, err, "parse items %s", itemsFile)
		}
	}

	for _, s := range sizes {
		w, h, err := parseSize(s)
		if err != nil {
			return nil, err
		}
		items = append(items, schema.Item{
			X: grid.AutoPosition,
			Y: grid.AutoPosition,
			W: w,
			H: h,
		})
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}
	return items, nil
}

// parseSize parses a "WxH" size string into positive dimensions.
func parseSize(s string) (w, h int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, gkerrors.New(gkerrors.ErrCodeInvalidFormat, "size %q must be WxH", s)
	}
	w, werr := strconv.Atoi(parts[0])
	h, herr := strconv.Atoi(parts[1])
	if werr != nil || herr != nil || w < 1 || h < 1 {
		return 0, 0, gkerrors.New(gkerrors.ErrCodeInvalidFormat, "size %q must be WxH with positive dimensions", s)
	}
	return w, h, nil
}
