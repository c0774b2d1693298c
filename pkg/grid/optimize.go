package grid

// Optimize defragments the layout: every movable item is reassigned, in
// visual-priority order, to the first row-major position whose free w×h block
// can contain it. Unlike compaction, which only pulls toward an edge, this is
// a best-fit gap search: a gap too small for an item's footprint is skipped
// even when an earlier row still has free columns. Static items stay fixed
// and act as obstacles.
func Optimize(l Layout, slots int) Layout {
	sorted := Sorted(l, AxisVertical)
	placed := make(Layout, 0, len(sorted))
	for _, it := range sorted {
		if it.Static {
			placed = append(placed, it)
		}
	}

	out := make(Layout, 0, len(sorted))
	for _, it := range sorted {
		if it.Static {
			out = append(out, it)
			continue
		}
		it.X, it.Y = firstFit(it, placed, slots)
		placed = append(placed, it)
		out = append(out, it)
	}
	return out
}

// firstFit scans cells row-major for the first free block that contains the
// item's footprint.
func firstFit(it Item, placed Layout, slots int) (x, y int) {
	w := it.W
	if w > slots {
		w = slots
	}
	for y = 0; ; y++ {
		for x = 0; x+w <= slots; x++ {
			probe := it
			probe.X, probe.Y = x, y
			if _, hit := placed.FirstCollision(probe); !hit {
				return x, y
			}
		}
	}
}
