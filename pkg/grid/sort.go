package grid

import "slices"

// Axis selects the compaction direction.
type Axis int

const (
	// AxisVertical compacts items toward row 0.
	AxisVertical Axis = iota
	// AxisHorizontal compacts items toward column 0.
	AxisHorizontal
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Sorted returns a copy of the layout in visual-priority order for the given
// axis: by (y, x) for vertical, by (x, y) for horizontal. On an exact
// coordinate tie, static items sort before dynamic items, so a fixed obstacle
// is settled before anything is positioned around it. The sort is stable, so
// list order decides any remaining tie.
//
// Every compaction pass and [Optimize] use this single ordering.
func Sorted(l Layout, axis Axis) Layout {
	out := l.Clone()
	slices.SortStableFunc(out, func(a, b Item) int {
		var c int
		if axis == AxisHorizontal {
			c = compare2(a.X, b.X, a.Y, b.Y)
		} else {
			c = compare2(a.Y, b.Y, a.X, b.X)
		}
		if c != 0 {
			return c
		}
		switch {
		case a.Static && !b.Static:
			return -1
		case !a.Static && b.Static:
			return 1
		}
		return 0
	})
	return out
}

func compare2(a1, b1, a2, b2 int) int {
	if a1 != b1 {
		return a1 - b1
	}
	return a2 - b2
}
