// Package pkg provides the core libraries for Gridkit grid layout management.
//
// # Overview
//
// Gridkit arranges rectangular items on a column-bounded grid and keeps the
// arrangement valid through edits: moves push neighbors out of the way,
// resizes push or shrink them, and compaction packs everything toward one
// edge without reordering. The pkg directory is organized into five areas:
//
//  1. [grid] - The layout engine (collision resolution, compaction, moves,
//     resizes, placement, defragmentation, free-area discovery)
//  2. [schema] - The JSON document format and map-form conversion
//  3. [render] - Output sinks (text, SVG, support graph)
//  4. [pipeline] - Orchestration (load → operate → render) with caching
//  5. [cache], [store], [errors], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through Gridkit:
//
//	layout document (JSON)
//	         ↓
//	    [schema] package (decode + validate)
//	         ↓
//	    [grid] package (engine operations)
//	         ↓
//	    [render] package (text/SVG/DOT output)
//
// The [pipeline] package drives that flow for the CLI and the HTTP API,
// consulting [cache] for content-addressed results and emitting
// [observability] hook events.
//
// # Quick Start
//
// Load a document, move an item, and render the result:
//
//	import (
//	    "github.com/matzehuels/gridkit/pkg/grid"
//	    "github.com/matzehuels/gridkit/pkg/schema"
//	    "github.com/matzehuels/gridkit/pkg/render/text"
//	)
//
//	doc, _ := schema.ImportJSON("dashboard.json")
//	l, _ := doc.Layout()
//
//	l = grid.MoveItem(l, "chart", 0, 2, grid.MoveOptions{
//	    Slots:        doc.Slots,
//	    Compaction:   grid.CompactionVertical,
//	    IsUserAction: true,
//	})
//
//	fmt.Print(text.Render(l, doc.Slots, text.Options{Legend: true}))
//
// # Main Packages
//
// [grid] - The pure engine. Layouts are plain item slices, every operation
// returns a new layout, and nothing in the package logs, blocks, or touches
// the clock. Determinism is part of the contract: the same input always
// produces the same output.
//
// [schema] - The document format shared by files, the HTTP API, and the
// MongoDB store. Converts between documents, engine layouts, and loosely
// typed maps.
//
// [render/text], [render/svg], [render/support] - Consumers of a computed
// layout: ASCII grids for terminals, standalone SVG, and the Graphviz
// support graph showing which item rests on which.
//
// [pipeline] - Applies declarative operation scripts to documents and
// renders layouts, with content-addressed caching of optimize and
// free-area results.
//
// [cache] - File, Redis, and null cache backends behind one interface.
//
// [store] - Named layout persistence, in memory or MongoDB.
//
// [errors] - Structured error codes shared across tool boundaries.
//
// [observability] - Engine, cache, and server hook interfaces with no-op
// defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/grid/...         # Engine only
//	go test -run Example           # Examples only
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/grid
// [schema]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/schema
// [render]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/render
// [render/text]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/render/text
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/render/svg
// [render/support]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/render/support
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/store
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridkit/pkg/observability
package pkg
