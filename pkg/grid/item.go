package grid

import "math"

// AutoPosition is the sentinel coordinate that marks an item for automatic
// placement by [PlaceNewItems]. An item whose X or Y equals AutoPosition has
// no meaningful position yet.
const AutoPosition = -1

// Item is a rectangular element on the grid. Items are plain values: engine
// operations never mutate an input item, they return modified copies.
//
// W and H must be at least 1. MinW and MinH default to 1 when zero; MaxW and
// MaxH are unbounded when zero. Coordinates are non-negative in settled
// layouts, though items may carry [AutoPosition] before placement.
type Item struct {
	ID string // Unique identifier within a layout

	X, Y int // Grid coordinates of the top-left corner
	W, H int // Size in grid units (≥1)

	MinW, MinH int     // Lower size bounds (0 means 1)
	MaxW, MaxH float64 // Upper size bounds (0 means unbounded)

	// Static marks the item as immovable. A static item is never relocated
	// by any operation but still blocks every other item.
	Static bool

	// Draggable and Resizable are per-item overrides consumed by interactive
	// callers. The engine's geometry ignores them.
	Draggable *bool
	Resizable *bool
}

// NewItem creates an item with the given geometry and default size bounds
// (minimum 1×1, unbounded maximum).
func NewItem(id string, x, y, w, h int) Item {
	return Item{ID: id, X: x, Y: y, W: w, H: h, MinW: 1, MinH: 1}
}

// Collides reports whether the two rectangles strictly overlap.
// Touching edges do not collide.
func (it Item) Collides(other Item) bool {
	return it.X < other.X+other.W &&
		it.X+it.W > other.X &&
		it.Y < other.Y+other.H &&
		it.Y+it.H > other.Y
}

// Bottom returns the row just below the item (Y+H).
func (it Item) Bottom() int { return it.Y + it.H }

// Right returns the column just right of the item (X+W).
func (it Item) Right() int { return it.X + it.W }

// Bounds returns the item's footprint as a [Rect].
func (it Item) Bounds() Rect { return Rect{X: it.X, Y: it.Y, W: it.W, H: it.H} }

// minSize returns the effective lower size bounds, defaulting to 1.
func (it Item) minSize() (w, h int) {
	w, h = it.MinW, it.MinH
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// maxSize returns the effective upper size bounds, defaulting to +Inf.
// Fractional maxima are truncated to whole grid units.
func (it Item) maxSize() (w, h float64) {
	w, h = it.MaxW, it.MaxH
	if w <= 0 {
		w = math.Inf(1)
	} else {
		w = math.Trunc(w)
	}
	if h <= 0 {
		h = math.Inf(1)
	} else {
		h = math.Trunc(h)
	}
	return w, h
}

// Rect is an axis-aligned rectangle in grid units. It is a transient,
// computed value (bounding boxes and free areas) and is never stored in a
// layout.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return r.X <= other.X && r.Y <= other.Y &&
		r.X+r.W >= other.X+other.W && r.Y+r.H >= other.Y+other.H
}

// Overlaps reports whether the two rectangles strictly overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}
