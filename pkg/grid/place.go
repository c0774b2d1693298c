package grid

// CorrectBounds clamps out-of-range items back onto the grid's bounded axis.
//
// An item whose trailing edge exceeds the slot count has its leading
// coordinate clamped to max(0, slots-size). An item with a negative leading
// coordinate is reset to 0 and its size expanded to fill the remaining slots.
// The expansion is deliberate, long-standing behavior; downstream layouts
// depend on it.
func CorrectBounds(l Layout, slots int) Layout {
	out := l.Clone()
	for i := range out {
		if out[i].Right() > slots {
			out[i].X = slots - out[i].W
			if out[i].X < 0 {
				out[i].X = 0
			}
		}
		if out[i].X < 0 {
			out[i].X = 0
			out[i].W = slots
		}
	}
	return out
}

// PlaceNewItems appends newItems to the existing layout. Items carrying the
// [AutoPosition] sentinel are placed starting at the row below everything in
// existing, packing left to right and wrapping to the next row on overflow;
// interior gaps are never searched. Items auto-placed earlier in the same
// batch count as obstacles for later ones. Items with explicit coordinates
// are inserted as given, without collision checking.
func PlaceNewItems(existing Layout, newItems []Item, slots int) Layout {
	out := existing.Clone()
	startRow := existing.Bottom()

	for _, it := range newItems {
		if it.X == AutoPosition || it.Y == AutoPosition {
			it.X, it.Y = autoPlace(it, out, startRow, slots)
		}
		out = append(out, it)
	}
	return out
}

// autoPlace scans row-major from (0, startRow) for the first slot-aligned
// position where the item fits and collides with nothing.
func autoPlace(it Item, l Layout, startRow, slots int) (x, y int) {
	w := it.W
	if w > slots {
		w = slots
	}
	for y = startRow; ; y++ {
		for x = 0; x+w <= slots; x++ {
			probe := it
			probe.X, probe.Y = x, y
			if _, hit := l.FirstCollision(probe); !hit {
				return x, y
			}
		}
	}
}
