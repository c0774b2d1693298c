package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/gridkit/pkg/pipeline"
	"github.com/matzehuels/gridkit/pkg/schema"
)

// loadDocument reads a layout document, filling in configured defaults for
// fields the file leaves unset.
func (c *CLI) loadDocument(path string) (schema.Document, error) {
	doc, err := schema.ImportJSON(path)
	if err != nil {
		return schema.Document{}, fmt.Errorf("load layout %s: %w", path, err)
	}
	if doc.Compaction == "" {
		doc.Compaction = c.Config.Compaction
	}
	return doc, nil
}

// writeDocument writes the document to output, or to stdout when output is
// "-". An empty output writes back to input.
func writeDocument(doc schema.Document, input, output string) (string, error) {
	if output == "-" {
		if err := schema.WriteJSON(doc, os.Stdout); err != nil {
			return "", err
		}
		return "", nil
	}
	path := output
	if path == "" {
		path = input
	}
	if err := schema.ExportJSON(doc, path); err != nil {
		return "", fmt.Errorf("write layout %s: %w", path, err)
	}
	return path, nil
}

// runOps loads a layout, applies the operations, and writes the result.
// It is the shared body of every single-operation command.
func (c *CLI) runOps(ctx context.Context, input, output string, ops []pipeline.Op) error {
	doc, err := c.loadDocument(input)
	if err != nil {
		return err
	}
	return c.applyAndWrite(ctx, doc, input, output, ops)
}

// applyAndWrite applies the operations to an already-loaded document.
func (c *CLI) applyAndWrite(ctx context.Context, doc schema.Document, input, output string, ops []pipeline.Op) error {
	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Apply(ctx, doc, ops)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Applied %d operations", len(ops)))

	path, err := writeDocument(result, input, output)
	if err != nil {
		return err
	}
	if path != "" {
		printSuccess("Layout updated")
		printFile(path)
		printStats(len(result.Items), result.Slots, false)
	}
	return nil
}

// findItem returns the document item with the given id.
func findItem(doc schema.Document, id string) (schema.Item, bool) {
	for _, it := range doc.Items {
		if it.ID == id {
			return it, true
		}
	}
	return schema.Item{}, false
}
