package grid

// MoveOptions carries the parameters shared by [MoveItem] and [MoveCluster].
type MoveOptions struct {
	// Slots is the fixed column count.
	Slots int

	// Compaction selects the strategy applied after a user action and the
	// axis used for cascading pushes. CompactionNone pushes vertically and
	// skips the final compaction pass.
	Compaction CompactionType

	// PreventCollision stops resolution after the move itself: only the
	// moved item changes, letting callers probe feasibility without
	// cascading.
	PreventCollision bool

	// IsUserAction marks moves originating from an interactive gesture;
	// these are compacted before returning. MoveCluster ignores it, since
	// compacting would break the cluster formation; callers compact when
	// the gesture ends.
	IsUserAction bool

	// Force bypasses the already-at-target short-circuit, for recomputing
	// the same target against a changed snapshot.
	Force bool
}

// MoveItem moves one item to the target coordinates and resolves the
// resulting collisions by cascading pushes.
//
// A static item never moves: the layout is returned unchanged. Unless Force
// is set, a move to the item's current position is also a no-op. A target that
// overlaps a static obstacle relocates the mover past the obstacle's trailing
// edge along the compaction axis before anything else. Each item colliding
// with the mover is then pushed flush against the mover's trailing edge along
// that axis, jumping entirely past any static obstacle in the way; the push
// repeats for whatever now collides with the pushed item. A final pass stacks
// any two items that were independently pushed onto the same destination, so
// no two displaced items overlap.
//
// When IsUserAction is set and a compaction type other than none is given,
// the corresponding strategy is applied to the final layout.
func MoveItem(l Layout, id string, x, y int, opts MoveOptions) Layout {
	it, ok := l.Item(id)
	if !ok || it.Static {
		return l
	}
	if !opts.Force && it.X == x && it.Y == y {
		return l
	}

	out := l.Clone()
	idx := out.index(id)
	out[idx].X, out[idx].Y = x, y
	if opts.PreventCollision {
		return out
	}

	axis := opts.Compaction.Axis()
	// The mover itself may land on a static footprint; it jumps past the
	// obstacle like any displaced item before collisions are resolved.
	out[idx] = jumpStatics(out[idx], out.Statics(), axis)

	out = cascade(out, []string{id}, axis)

	if opts.IsUserAction && opts.Compaction != CompactionNone {
		out = Compact(out, opts.Compaction, opts.Slots, false)
	}
	return out
}

// MoveCluster translates a set of items as one rigid body: the members'
// bounding box is moved so its top-left corner lands on the target, and every
// member shifts by that same delta, exactly preserving each member's offset
// relative to the others.
//
// Static members are never moved and are dropped from the set. The move is
// rejected outright (the input returned unchanged) when the target bounding
// box would overlap a static obstacle. Otherwise any non-member overlapping
// any member is pushed past the whole group's trailing edge, with the same
// cascading and stacking guarantees as [MoveItem].
//
// The cluster itself is never compacted here; callers run compaction when
// the gesture ends.
func MoveCluster(l Layout, ids []string, x, y int, opts MoveOptions) Layout {
	member := make(map[string]bool, len(ids))
	var members []Item
	for _, id := range ids {
		if it, ok := l.Item(id); ok && !it.Static {
			member[id] = true
			members = append(members, it)
		}
	}
	if len(members) == 0 {
		return l
	}

	box := BoundingBox(members)
	dx, dy := x-box.X, y-box.Y
	if dx == 0 && dy == 0 && !opts.Force {
		return l
	}

	target := Rect{X: x, Y: y, W: box.W, H: box.H}
	for _, st := range l.Statics() {
		if member[st.ID] {
			continue
		}
		if target.Overlaps(st.Bounds()) {
			return l
		}
	}

	out := l.Clone()
	for i := range out {
		if member[out[i].ID] {
			out[i].X += dx
			out[i].Y += dy
		}
	}
	if opts.PreventCollision {
		return out
	}

	// Seed the cascade with the whole group: anything overlapping any member
	// is pushed past the group's bounding box, not just the member it hit.
	axis := opts.Compaction.Axis()
	statics := out.Statics()
	pinned := make(map[string]bool, len(member))
	for id := range member {
		pinned[id] = true
	}
	var queue []string
	for {
		hit := -1
		for i, other := range out {
			if other.Static || pinned[other.ID] {
				continue
			}
			for _, id := range ids {
				if !member[id] {
					continue
				}
				m, _ := out.Item(id)
				if other.Collides(m) {
					hit = i
					break
				}
			}
			if hit >= 0 {
				break
			}
		}
		if hit < 0 {
			break
		}
		pushed := pushFlushRect(out[hit], target, axis)
		pushed = jumpStatics(pushed, statics, axis)
		out[hit] = pushed
		pinned[pushed.ID] = true
		queue = append(queue, pushed.ID)
	}

	out, queue = cascadeFrom(out, queue, pinned, axis)
	return stackDisplaced(out, queue, pinned, axis)
}

// cascade resolves collisions seeded by the given already-positioned items.
// seeds are pinned for the pass, mirroring the transient moved marker: a
// displaced item is never pushed twice.
func cascade(l Layout, seeds []string, axis Axis) Layout {
	pinned := make(map[string]bool, len(seeds))
	for _, id := range seeds {
		pinned[id] = true
	}
	queue := append([]string(nil), seeds...)
	out, queue := cascadeFrom(l, queue, pinned, axis)

	// Everything after the seeds was displaced by the cascade.
	return stackDisplaced(out, queue[len(seeds):], pinned, axis)
}

// cascadeFrom walks the work queue: every unpinned movable item colliding
// with a queued item is pushed flush against it, jumped past statics, pinned,
// and queued in turn. The final queue is returned alongside the layout.
func cascadeFrom(l Layout, queue []string, pinned map[string]bool, axis Axis) (Layout, []string) {
	out := l
	statics := out.Statics()
	for qi := 0; qi < len(queue); qi++ {
		for {
			mover, ok := out.Item(queue[qi])
			if !ok {
				break
			}
			hit := -1
			for i, other := range out {
				if other.ID == mover.ID || other.Static || pinned[other.ID] {
					continue
				}
				if mover.Collides(other) {
					hit = i
					break
				}
			}
			if hit < 0 {
				break
			}
			pushed := pushFlush(out[hit], mover, axis)
			pushed = jumpStatics(pushed, statics, axis)
			out[hit] = pushed
			pinned[pushed.ID] = true
			queue = append(queue, pushed.ID)
		}
	}
	return out, queue
}

// stackDisplaced runs the secondary pass: displaced items that were pushed
// onto the same destination are stacked along the axis instead of being left
// overlapping. Each displaced item, in visual-priority order, advances until
// it collides with nothing except other not-yet-stacked displaced items.
func stackDisplaced(l Layout, displaced []string, pinned map[string]bool, axis Axis) Layout {
	if len(displaced) == 0 {
		return l
	}
	out := l
	statics := out.Statics()

	unstacked := make(map[string]bool, len(displaced))
	for _, id := range displaced {
		unstacked[id] = true
	}
	var order []Item
	for _, id := range displaced {
		if it, ok := out.Item(id); ok {
			order = append(order, it)
		}
	}
	order = Sorted(order, axis)

	for _, d := range order {
		delete(unstacked, d.ID)
		it, _ := out.Item(d.ID)
		for {
			hit := -1
			for i, other := range out {
				if other.ID == it.ID || unstacked[other.ID] {
					continue
				}
				if it.Collides(other) {
					hit = i
					break
				}
			}
			if hit < 0 {
				break
			}
			it = pushFlush(it, out[hit], axis)
			it = jumpStatics(it, statics, axis)
		}
		out[out.index(d.ID)] = it
	}
	return out
}

// pushFlush places it directly against the mover's trailing edge along the
// axis, leaving the cross coordinate alone.
func pushFlush(it, mover Item, axis Axis) Item {
	if axis == AxisHorizontal {
		it.X = mover.Right()
	} else {
		it.Y = mover.Bottom()
	}
	return it
}

// pushFlushRect places it directly against a bounding box's trailing edge.
func pushFlushRect(it Item, box Rect, axis Axis) Item {
	if axis == AxisHorizontal {
		it.X = box.X + box.W
	} else {
		it.Y = box.Y + box.H
	}
	return it
}

// jumpStatics advances it past every static obstacle in its way, one trailing
// edge at a time.
func jumpStatics(it Item, statics []Item, axis Axis) Item {
	for {
		st, ok := staticObstacle(it, statics)
		if !ok {
			return it
		}
		if axis == AxisHorizontal {
			it.X = st.Right()
		} else {
			it.Y = st.Bottom()
		}
	}
}
