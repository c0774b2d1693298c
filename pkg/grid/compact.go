package grid

import (
	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
)

// Strategy is a compaction algorithm. Implementations must be pure: both
// methods return new layouts and leave their inputs untouched.
//
// The engine ships a closed set of strategies ([None], [Standard], [Fast]),
// but callers may supply their own.
type Strategy interface {
	// Compact settles every movable item toward the grid edge for the
	// strategy's axis. With allowOverlap, Compact returns an independent
	// copy with unchanged positions.
	Compact(l Layout, slots int, allowOverlap bool) Layout

	// ResolveCollisions eliminates overlaps without pulling items toward
	// the edge: items keep their position unless they overlap something
	// already settled, in which case they advance along the axis until free.
	ResolveCollisions(l Layout, slots int) Layout
}

// CompactionType names one of the built-in strategies.
type CompactionType int

const (
	// CompactionNone leaves positions alone but still resolves overlaps.
	CompactionNone CompactionType = iota
	// CompactionVertical is the O(N²) per-item sweep toward row 0.
	CompactionVertical
	// CompactionHorizontal is the O(N²) per-item sweep toward column 0,
	// wrapping items that would exceed the slot count onto the next row.
	CompactionHorizontal
	// CompactionFastVertical is the O(N) skyline sweep toward row 0.
	CompactionFastVertical
	// CompactionFastHorizontal is the O(N) skyline sweep toward column 0.
	CompactionFastHorizontal
)

var compactionNames = map[CompactionType]string{
	CompactionNone:           "none",
	CompactionVertical:       "vertical",
	CompactionHorizontal:     "horizontal",
	CompactionFastVertical:   "fast-vertical",
	CompactionFastHorizontal: "fast-horizontal",
}

// String returns the type's canonical name.
func (t CompactionType) String() string {
	if s, ok := compactionNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseCompactionType resolves a canonical name to a CompactionType.
func ParseCompactionType(s string) (CompactionType, error) {
	for t, name := range compactionNames {
		if name == s {
			return t, nil
		}
	}
	return CompactionNone, gkerrors.New(gkerrors.ErrCodeInvalidCompaction, "unknown compaction type: %q", s)
}

// Axis returns the compaction axis. CompactionNone resolves collisions
// vertically, so it reports [AxisVertical].
func (t CompactionType) Axis() Axis {
	switch t {
	case CompactionHorizontal, CompactionFastHorizontal:
		return AxisHorizontal
	default:
		return AxisVertical
	}
}

// Strategy returns the built-in [Strategy] for the type.
func (t CompactionType) Strategy() Strategy {
	switch t {
	case CompactionVertical:
		return Standard{Axis: AxisVertical}
	case CompactionHorizontal:
		return Standard{Axis: AxisHorizontal}
	case CompactionFastVertical:
		return Fast{Axis: AxisVertical}
	case CompactionFastHorizontal:
		return Fast{Axis: AxisHorizontal}
	default:
		return None{}
	}
}

// Compact applies the named strategy's Compact operation.
func Compact(l Layout, t CompactionType, slots int, allowOverlap bool) Layout {
	return t.Strategy().Compact(l, slots, allowOverlap)
}

// ResolveCollisions applies the named strategy's ResolveCollisions operation.
func ResolveCollisions(l Layout, t CompactionType, slots int) Layout {
	return t.Strategy().ResolveCollisions(l, slots)
}

// None is the no-compaction strategy. Compact is the identity (modulo overlap
// resolution), so items stay where the caller put them; a user action still
// yields a non-overlapping layout because Compact falls back to
// ResolveCollisions, which pushes overlapping movable items apart vertically.
type None struct{}

// Compact returns an independent copy of the layout. Unless allowOverlap is
// set, overlaps are first resolved with a vertical push.
func (None) Compact(l Layout, slots int, allowOverlap bool) Layout {
	if allowOverlap {
		return l.Clone()
	}
	return None{}.ResolveCollisions(l, slots)
}

// ResolveCollisions pushes overlapping movable items apart along the vertical
// axis. Static items never move.
func (None) ResolveCollisions(l Layout, slots int) Layout {
	return Standard{Axis: AxisVertical}.ResolveCollisions(l, slots)
}

var (
	_ Strategy = None{}
	_ Strategy = Standard{}
	_ Strategy = Fast{}
)
