package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/pipeline"
)

// applyCommand creates the apply command for running operation scripts.
func (c *CLI) applyCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "apply [layout.json] [ops.json]",
		Short: "Apply a declarative operation script to a layout",
		Long: `Apply a declarative operation script to a layout.

The script is a JSON array of operations executed in order. Each operation
names its kind ("op") and the fields that kind uses:

  [
    {"op": "move", "id": "chart", "x": 0, "y": 2, "userAction": true},
    {"op": "resize", "id": "chart", "x": 0, "y": 2, "w": 4, "h": 3},
    {"op": "place", "items": [{"id": "note", "x": -1, "y": -1, "w": 2, "h": 1}]},
    {"op": "compact", "compaction": "vertical"}
  ]

Kinds: compact, move, move-group, resize, place, correct, optimize.
Execution stops at the first failing operation and the input is left
untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := readOps(args[1])
			if err != nil {
				return err
			}
			return c.runOps(cmd.Context(), args[0], output, ops)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input, \"-\" for stdout)")

	return cmd
}

// readOps reads a JSON operation script.
func readOps(path string) ([]pipeline.Op, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ops %s: %w", path, err)
	}
	var ops []pipeline.Op
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, gkerrors.Wrap(gkerrors.ErrCodeInvalidFormat, err, "parse ops %s", path)
	}
	return ops, nil
}
