package grid

// Standard is the O(N²) compaction sweep. Items are processed in
// visual-priority order ([Sorted]); each one slides toward the grid edge
// while the way is free and is then pushed forward past any blocker
// (settled items and static obstacles alike) until it rests collision-free.
//
// The horizontal variant wraps: an item whose trailing edge would exceed the
// slot count restarts at column 0 on the next row and is re-checked there, so
// a chain of obstacles is walked past one at a time.
type Standard struct {
	Axis Axis
}

// Compact settles every movable item toward the grid edge. With allowOverlap
// it returns an independent copy with unchanged positions.
func (s Standard) Compact(l Layout, slots int, allowOverlap bool) Layout {
	if allowOverlap {
		return l.Clone()
	}
	return s.sweep(l, slots, true)
}

// ResolveCollisions eliminates overlaps without compacting: items keep their
// position unless they collide, in which case they advance along the axis
// until free.
func (s Standard) ResolveCollisions(l Layout, slots int) Layout {
	return s.sweep(l, slots, false)
}

func (s Standard) sweep(l Layout, slots int, pull bool) Layout {
	sorted := Sorted(l, s.Axis)
	statics := l.Statics()
	settled := make(Layout, 0, len(sorted))
	for _, it := range sorted {
		if !it.Static {
			it = s.settle(it, settled, statics, slots, pull)
		}
		settled = append(settled, it)
	}
	return settled
}

// settle finds the resting position for one movable item against everything
// already settled plus every static obstacle.
func (s Standard) settle(it Item, settled Layout, statics []Item, slots int, pull bool) Item {
	if s.Axis == AxisHorizontal {
		return s.settleHorizontal(it, settled, statics, slots, pull)
	}

	if pull {
		for it.Y > 0 {
			probe := it
			probe.Y--
			if _, blocked := obstacle(probe, settled, statics); blocked {
				break
			}
			it = probe
		}
	}
	for {
		hit, ok := obstacle(it, settled, statics)
		if !ok {
			break
		}
		it.Y = hit.Bottom()
	}
	return it
}

func (s Standard) settleHorizontal(it Item, settled Layout, statics []Item, slots int, pull bool) Item {
	if pull {
		for it.X > 0 {
			probe := it
			probe.X--
			if _, blocked := obstacle(probe, settled, statics); blocked {
				break
			}
			it = probe
		}
	}
	for {
		if it.X > 0 && it.Right() > slots {
			it.X = 0
			it.Y++
			continue
		}
		hit, ok := obstacle(it, settled, statics)
		if !ok {
			break
		}
		it.X = hit.Right()
	}
	return it
}

// obstacle returns the first settled item or static blocking it.
func obstacle(it Item, settled Layout, statics []Item) (Item, bool) {
	if hit, ok := settled.FirstCollision(it); ok {
		return hit, true
	}
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
