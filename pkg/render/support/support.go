// Package support renders the support graph of a layout.
//
// Under a compaction axis every item rests on whatever sits flush against
// its leading edge: with vertical compaction an item is supported by the
// items its top edge touches, with horizontal compaction by the items its
// left edge touches. The resulting directed graph explains why a compacted
// layout looks the way it does, and which items would move if one were
// removed.
//
// [ToDOT] emits the graph in Graphviz DOT format; [RenderSVG] rasterizes a
// DOT string in-process via [github.com/goccy/go-graphviz].
package support

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridkit/pkg/grid"
)

// Edge records that From rests on To.
type Edge struct {
	From string
	To   string
}

// Edges computes the support edges of the layout along the axis. An item
// with nothing flush against its leading edge rests on the grid boundary
// and produces no edge.
func Edges(l grid.Layout, axis grid.Axis) []Edge {
	var edges []Edge
	sorted := grid.Sorted(l, axis)
	for _, it := range sorted {
		for _, other := range sorted {
			if other.ID == it.ID {
				continue
			}
			if supports(other, it, axis) {
				edges = append(edges, Edge{From: it.ID, To: other.ID})
			}
		}
	}
	return edges
}

// supports reports whether below sits flush against the leading edge of it,
// with overlapping extent on the cross axis.
func supports(below, it grid.Item, axis grid.Axis) bool {
	if axis == grid.AxisHorizontal {
		return below.Right() == it.X && below.Y < it.Bottom() && it.Y < below.Bottom()
	}
	return below.Bottom() == it.Y && below.X < it.Right() && it.X < below.Right()
}

// ToDOT converts the layout's support graph to Graphviz DOT format. Static
// items are rendered with dashed outlines and grey fill to distinguish fixed
// obstacles from movable items.
func ToDOT(l grid.Layout, axis grid.Axis) string {
	var buf bytes.Buffer
	buf.WriteString("digraph support {\n")
	if axis == grid.AxisHorizontal {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=BT;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, it := range grid.Sorted(l, axis) {
		label := fmt.Sprintf("%s\n(%d,%d) %dx%d", it.ID, it.X, it.Y, it.W, it.H)
		if it.Static {
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", it.ID, label)
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", it.ID, label)
	}

	buf.WriteString("\n")
	for _, e := range Edges(l, axis) {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz <svg> tag so the document scales
// cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
