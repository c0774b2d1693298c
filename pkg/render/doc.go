// Package render provides output sinks for computed grid layouts.
//
// # Overview
//
// The subpackages turn a [grid.Layout] into something a human can look at.
// They are pure consumers: none of them mutate the layout or call back into
// the engine.
//
//   - [text]: fixed-width ASCII grids for terminals and tests
//   - [svg]: standalone SVG documents, one rectangle per item
//   - [support]: the support graph (which item rests on which) as Graphviz
//     DOT, optionally rendered to SVG via goccy/go-graphviz
//
// # Choosing a Sink
//
// Text rendering is the cheapest and is what the interactive editor and the
// test suite use:
//
//	fmt.Print(text.Render(l, slots, text.Options{Legend: true}))
//
// SVG is for sharing and embedding:
//
//	svg := svg.Render(l, slots, svg.WithCellSize(48))
//
// The support graph is a debugging view of compaction: an edge a -> b means
// a rests flush on b along the compaction axis, so a move of b can cascade
// into a.
//
//	dot := support.ToDOT(l, grid.AxisVertical)
//	img, err := support.RenderSVG(ctx, dot)
//
// [grid.Layout]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/grid#Layout
// [text]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/render/text
// [svg]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/render/svg
// [support]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/render/support
package render
