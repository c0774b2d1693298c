package grid

// ResizeBehavior selects how resize conflicts with neighbors are resolved.
type ResizeBehavior int

const (
	// ResizePush displaces overlapping neighbors along the compaction axis,
	// with the same cascading semantics as [MoveItem].
	ResizePush ResizeBehavior = iota
	// ResizeShrink shrinks each overlapping neighbor in place by the exact
	// overlap, falling back to push for any neighbor that cannot shrink
	// without dropping below its own minimum size.
	ResizeShrink
)

// ResizeOptions carries the parameters for [ResizeItem].
type ResizeOptions struct {
	// Slots is the fixed column count.
	Slots int

	// Compaction supplies the axis for pushed neighbors. No compaction is
	// applied here; callers compact when the gesture ends.
	Compaction CompactionType

	// Behavior selects push or shrink resolution.
	Behavior ResizeBehavior

	// PreventCollision stops after the clamped geometry is applied, leaving
	// neighbors untouched.
	PreventCollision bool
}

// ResizeItem applies a new desired geometry to one item.
//
// The size is first clamped to the item's own min/max bounds (fractional
// maxima truncated to whole units), then to the grid: an item that would
// cross the slot boundary keeps its position and loses width instead. A
// static item is never resized.
//
// With [ResizeShrink], each neighbor overlapping the grown footprint is
// shrunk by the exact overlap with its leading edge shifted outward; a
// neighbor that cannot shrink is pushed instead. With [ResizePush], neighbors
// cascade away exactly as in [MoveItem], and if the new footprint itself
// lands on a static obstacle, the resizing item is relocated to the nearest
// free position along the compaction axis.
//
// ResizeItem never compacts; run compaction separately when the gesture ends.
func ResizeItem(l Layout, id string, x, y, w, h int, opts ResizeOptions) Layout {
	old, ok := l.Item(id)
	if !ok || old.Static {
		return l
	}

	next := old
	next.X, next.Y, next.W, next.H = x, y, clampW(old, w), clampH(old, h)
	if next.X+next.W > opts.Slots {
		next.W = opts.Slots - next.X
	}
	if next.W < 1 {
		next.W = 1
	}
	if next.H < 1 {
		next.H = 1
	}

	out := l.Clone()
	axis := opts.Compaction.Axis()
	statics := out.Statics()

	// A grown footprint overlapping a static relocates the resizing item
	// itself; statics never yield.
	if _, blocked := staticObstacle(next, statics); blocked {
		next = nearestFree(next, out, axis)
	}
	out[out.index(id)] = next
	if opts.PreventCollision {
		return out
	}

	if opts.Behavior == ResizeShrink {
		return resolveShrink(out, old, next, opts.Slots, axis)
	}
	return cascade(out, []string{id}, axis)
}

// resolveShrink shrinks each overlapping neighbor by the exact overlap along
// the direction the item grew. Neighbors that cannot shrink fall back to push
// semantics individually.
func resolveShrink(l Layout, old, next Item, slots int, axis Axis) Layout {
	out := l
	statics := out.Statics()
	var pushedSeeds []string

	for i, nb := range out {
		if nb.ID == next.ID || nb.Static || !next.Collides(nb) {
			continue
		}
		if shrunk, ok := shrinkNeighbor(old, next, nb); ok {
			out[i] = shrunk
			continue
		}
		// Infeasible shrink: push this neighbor alone.
		pushed := pushFlush(nb, next, axis)
		pushed = jumpStatics(pushed, statics, axis)
		out[i] = pushed
		pushedSeeds = append(pushedSeeds, pushed.ID)
	}

	if len(pushedSeeds) == 0 {
		return out
	}
	pinned := map[string]bool{next.ID: true}
	for _, id := range pushedSeeds {
		pinned[id] = true
	}
	out, queue := cascadeFrom(out, pushedSeeds, pinned, axis)
	return stackDisplaced(out, queue, pinned, axis)
}

// shrinkNeighbor reduces nb by its overlap with the grown edges of next.
// It reports false when any required reduction would drop nb below its
// minimum size.
func shrinkNeighbor(old, next, nb Item) (Item, bool) {
	minW, minH := nb.minSize()

	if next.Right() > old.Right() && nb.X < next.Right() && nb.Right() > next.Right() {
		overlap := next.Right() - nb.X
		if nb.W-overlap < minW {
			return nb, false
		}
		nb.X += overlap
		nb.W -= overlap
	}
	if next.X < old.X && nb.Right() > next.X && nb.X < next.X {
		overlap := nb.Right() - next.X
		if nb.W-overlap < minW {
			return nb, false
		}
		nb.W -= overlap
	}
	if next.Bottom() > old.Bottom() && nb.Y < next.Bottom() && nb.Bottom() > next.Bottom() {
		overlap := next.Bottom() - nb.Y
		if nb.H-overlap < minH {
			return nb, false
		}
		nb.Y += overlap
		nb.H -= overlap
	}
	if next.Y < old.Y && nb.Bottom() > next.Y && nb.Y < next.Y {
		overlap := nb.Bottom() - next.Y
		if nb.H-overlap < minH {
			return nb, false
		}
		nb.H -= overlap
	}

	if next.Collides(nb) {
		return nb, false
	}
	return nb, true
}

// nearestFree advances it along the axis until it overlaps nothing.
func nearestFree(it Item, l Layout, axis Axis) Item {
	for {
		hit, ok := l.FirstCollision(it)
		if !ok {
			return it
		}
		if axis == AxisHorizontal {
			it.X = hit.Right()
		} else {
			it.Y = hit.Bottom()
		}
	}
}

func clampW(it Item, w int) int {
	minW, _ := it.minSize()
	maxW, _ := it.maxSize()
	if w < minW {
		w = minW
	}
	if float64(w) > maxW {
		w = int(maxW)
	}
	return w
}

func clampH(it Item, h int) int {
	_, minH := it.minSize()
	_, maxH := it.maxSize()
	if h < minH {
		h = minH
	}
	if float64(h) > maxH {
		h = int(maxH)
	}
	return h
}
