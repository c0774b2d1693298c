// Package grid is a deterministic layout engine for rectangular items on a
// discrete two-dimensional grid.
//
// # Overview
//
// The grid has a fixed number of slots (columns) along the x axis and an
// unbounded extent along the y axis. Items occupy integer-aligned rectangles
// and never overlap in a settled layout. The engine positions, compacts,
// moves, resizes, and defragments items while resolving cascading collisions
// between moving items and fixed obstacles.
//
// Every operation is a pure function: it takes an immutable [Layout] plus
// explicit parameters and returns a newly constructed Layout with the same
// set of item IDs. The engine holds no state between calls, performs no I/O,
// and is safe to invoke concurrently from any number of goroutines.
//
// # Items and Layouts
//
// An [Item] is a value record with an ID, position, size, size limits, and a
// Static flag. Static items are immovable: no operation ever relocates them,
// but they always block others. A [Layout] is an ordered list of items; list
// order carries no grid meaning but breaks ties during compaction, so it acts
// as the visual-priority signal.
//
// Callers must look items up by ID, not index; output order is not
// contractually stable.
//
// # Compaction
//
// Compaction pulls items toward one grid edge without introducing overlaps.
// Five interchangeable strategies implement the [Strategy] interface:
//
//   - [None]: leaves positions alone, but still resolves overlaps
//   - [Standard] (vertical or horizontal): O(N²) per-item sweep
//   - [Fast] (vertical or horizontal): O(N) skyline sweep using per-column
//     watermarks
//
// For layouts without stair-stepped static obstacles, Standard and Fast agree
// exactly on output, and both are idempotent. Select a strategy through a
// [CompactionType] or supply your own Strategy implementation.
//
// # Moving and Resizing
//
// [MoveItem] relocates a single item and resolves collisions by cascading
// pushes: each displaced item is pushed flush against the trailing edge of
// whatever displaced it, jumping entirely past static obstacles. [MoveCluster]
// translates a set of items as one rigid body via their shared bounding box,
// exactly preserving the members' relative offsets. [ResizeItem] changes an
// item's geometry and resolves overlapping neighbors by pushing them or
// shrinking them in place.
//
// # Placement and Defragmentation
//
// [PlaceNewItems] auto-places incoming items below the existing layout.
// [Optimize] defragments a layout by reassigning every movable item to the
// first free gap that can contain it, in visual-priority order. [FreeAreas]
// reports all maximal empty rectangles, which callers use for drop-target
// highlighting and gap search.
//
// # Interactive gestures
//
// A single continuous gesture (one drag) should recompute every frame from
// the same pre-gesture snapshot rather than chaining each call onto the
// previous result; per-frame outputs are otherwise compounded. Cancelling a
// gesture is simply discarding the new layout and keeping the snapshot.
package grid
