package grid

// Fast is the O(N) skyline compaction sweep. It keeps a running watermark,
// the lowest free coordinate, per column (vertical) or per row (horizontal).
// An item settles at the maximum watermark across every column or row it
// spans; placing it raises those watermarks to its trailing edge.
//
// Static obstacles raise the watermark at their turn in visual-priority
// order, and an item whose skyline position still collides with a static
// jumps entirely past that static's trailing edge. For layouts without
// stair-stepped static obstacles Fast and [Standard] agree exactly on output.
type Fast struct {
	Axis Axis
}

// Compact settles every movable item toward the grid edge. With allowOverlap
// it returns an independent copy with unchanged positions.
func (f Fast) Compact(l Layout, slots int, allowOverlap bool) Layout {
	if allowOverlap {
		return l.Clone()
	}
	return f.sweep(l, slots, true)
}

// ResolveCollisions eliminates overlaps without compacting: an item advances
// only when the watermark (or a static obstacle) forces it past its current
// coordinate.
func (f Fast) ResolveCollisions(l Layout, slots int) Layout {
	return f.sweep(l, slots, false)
}

func (f Fast) sweep(l Layout, slots int, pull bool) Layout {
	if f.Axis == AxisHorizontal {
		return f.sweepHorizontal(l, slots, pull)
	}

	sorted := Sorted(l, AxisVertical)
	statics := l.Statics()
	marks := make([]int, slots)
	out := make(Layout, 0, len(sorted))

	for _, it := range sorted {
		if it.Static {
			raiseMarks(marks, it.X, it.Right(), it.Bottom())
			out = append(out, it)
			continue
		}

		y := 0
		if !pull {
			y = it.Y
		}
		for x := clampIdx(it.X, slots); x < clampIdx(it.Right(), slots); x++ {
			if marks[x] > y {
				y = marks[x]
			}
		}
		for {
			probe := it
			probe.Y = y
			st, ok := staticObstacle(probe, statics)
			if !ok {
				break
			}
			y = st.Bottom()
		}

		it.Y = y
		raiseMarks(marks, it.X, it.Right(), it.Bottom())
		out = append(out, it)
	}
	return out
}

func (f Fast) sweepHorizontal(l Layout, slots int, pull bool) Layout {
	sorted := Sorted(l, AxisHorizontal)
	statics := l.Statics()
	marks := make(map[int]int) // row -> lowest free column
	out := make(Layout, 0, len(sorted))

	for _, it := range sorted {
		if it.Static {
			for r := it.Y; r < it.Bottom(); r++ {
				if it.Right() > marks[r] {
					marks[r] = it.Right()
				}
			}
			out = append(out, it)
			continue
		}

		x, y := 0, it.Y
		if !pull {
			x = it.X
		}
		for {
			moved := false
			for r := y; r < y+it.H; r++ {
				if marks[r] > x {
					x = marks[r]
					moved = true
				}
			}
			// Wrap onto the next row when pushed past the slot boundary.
			if x > 0 && x+it.W > slots {
				x, y = 0, y+1
				moved = true
				continue
			}
			probe := it
			probe.X, probe.Y = x, y
			if st, ok := staticObstacle(probe, statics); ok {
				x = st.Right()
				continue
			}
			if !moved {
				break
			}
		}

		it.X, it.Y = x, y
		for r := it.Y; r < it.Bottom(); r++ {
			if it.Right() > marks[r] {
				marks[r] = it.Right()
			}
		}
		out = append(out, it)
	}
	return out
}

// staticObstacle returns the first static blocking it, in list order.
func staticObstacle(it Item, statics []Item) (Item, bool) {
	for _, st := range statics {
		if st.ID == it.ID {
			continue
		}
		if it.Collides(st) {
			return st, true
		}
	}
	return Item{}, false
}

func raiseMarks(marks []int, from, to, edge int) {
	for x := clampIdx(from, len(marks)); x < clampIdx(to, len(marks)); x++ {
		if edge > marks[x] {
			marks[x] = edge
		}
	}
}

func clampIdx(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
