package grid

// Layout is an ordered list of items. List order carries no grid meaning but
// acts as the default tie-break for compaction and defragmentation, so it is
// effectively the visual-priority order.
//
// Engine operations treat layouts as immutable: they return newly constructed
// layouts and never modify the input slice or its items in place. Output
// order is not contractually stable; look items up by ID, not index.
type Layout []Item

// Clone returns an independent copy of the layout. Items are values, so a
// slice copy is a deep copy of all geometry.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Item returns the item with the given ID, if present.
func (l Layout) Item(id string) (Item, bool) {
	for _, it := range l {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// index returns the position of id in the list, or -1.
func (l Layout) index(id string) int {
	for i, it := range l {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Statics returns the immovable items, in list order.
func (l Layout) Statics() []Item {
	var out []Item
	for _, it := range l {
		if it.Static {
			out = append(out, it)
		}
	}
	return out
}

// Bottom returns the first row below every item, or 0 for an empty layout.
func (l Layout) Bottom() int {
	bottom := 0
	for _, it := range l {
		if b := it.Bottom(); b > bottom {
			bottom = b
		}
	}
	return bottom
}

// FirstCollision returns the first item in list order that overlaps it,
// excluding the item itself by ID.
func (l Layout) FirstCollision(it Item) (Item, bool) {
	for _, other := range l {
		if other.ID == it.ID {
			continue
		}
		if it.Collides(other) {
			return other, true
		}
	}
	return Item{}, false
}

// BoundingBox returns the minimal rectangle covering all given items.
// The input must be non-empty; the zero Rect is returned otherwise.
func BoundingBox(items []Item) Rect {
	if len(items) == 0 {
		return Rect{}
	}
	minX, minY := items[0].X, items[0].Y
	maxX, maxY := items[0].Right(), items[0].Bottom()
	for _, it := range items[1:] {
		if it.X < minX {
			minX = it.X
		}
		if it.Y < minY {
			minY = it.Y
		}
		if r := it.Right(); r > maxX {
			maxX = r
		}
		if b := it.Bottom(); b > maxY {
			maxY = b
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
