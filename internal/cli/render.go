package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/pipeline"
)

// renderCommand creates the render command for generating layout output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a layout as text, SVG, DOT, or JSON",
		Long: `Render a layout as text, SVG, DOT, or JSON.

Formats:
  text  ASCII grid with a legend, printed to stdout by default
  svg   standalone SVG with one rectangle per item
  dot   Graphviz support graph (which item rests on which)
  json  the item list as indented JSON

File-oriented formats default to <input>.<format> next to the input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !pipeline.ValidFormats[format] {
				return gkerrors.New(gkerrors.ErrCodeUnsupported, "unsupported format %q", format)
			}

			doc, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}
			l, err := doc.Layout()
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), true)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			data, err := runner.Render(cmd.Context(), l, doc.Slots, format)
			if err != nil {
				return fmt.Errorf("render layout: %w", err)
			}

			if output == "-" || (output == "" && format == pipeline.FormatText) {
				_, err := os.Stdout.Write(data)
				return err
			}

			path := output
			if path == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				path = base + "." + format
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", path, err)
			}

			printSuccess("Rendered %s", format)
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (\"-\" for stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatText, "output format: text, svg, dot, json")

	return cmd
}
