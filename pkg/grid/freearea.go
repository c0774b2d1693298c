package grid

import "slices"

// FreeAreas returns every maximal empty rectangle between row 0 and the
// layout's bottom edge. A rectangle is maximal when no larger free rectangle
// fully contains it. The result is sorted by (y, x). An empty layout has no
// bounded region and yields nil.
//
// The search builds a per-row histogram of free-cell runs and expands each
// candidate leftward while the running minimum run length stays nonzero;
// candidates contained in a larger area are then discarded.
func FreeAreas(l Layout, slots int) []Rect {
	height := l.Bottom()
	if height == 0 || slots <= 0 {
		return nil
	}

	occupied := make([]bool, height*slots)
	for _, it := range l {
		for y := clampIdx(it.Y, height); y < clampIdx(it.Bottom(), height); y++ {
			for x := clampIdx(it.X, slots); x < clampIdx(it.Right(), slots); x++ {
				occupied[y*slots+x] = true
			}
		}
	}

	// runs[x] = free cells in column x from the current row downward.
	runs := make([]int, slots)
	seen := make(map[Rect]bool)
	var areas []Rect

	for y := height - 1; y >= 0; y-- {
		for x := 0; x < slots; x++ {
			if occupied[y*slots+x] {
				runs[x] = 0
			} else {
				runs[x]++
			}
		}
		if y > 0 && rowMatches(occupied, runs, y, slots) {
			// Same histogram extends upward; emit from the top row only.
			continue
		}
		emitRow(runs, y, slots, seen, &areas)
	}

	areas = filterContained(areas)
	slices.SortFunc(areas, func(a, b Rect) int {
		return compare2(a.Y, b.Y, a.X, b.X)
	})
	return areas
}

// emitRow generates every candidate rectangle anchored at row y: for each
// column, expand left while the running minimum run length is nonzero.
func emitRow(runs []int, y, slots int, seen map[Rect]bool, areas *[]Rect) {
	for right := 0; right < slots; right++ {
		minRun := runs[right]
		for left := right; left >= 0 && runs[left] > 0; left-- {
			if runs[left] < minRun {
				minRun = runs[left]
			}
			r := Rect{X: left, Y: y, W: right - left + 1, H: minRun}
			if !seen[r] {
				seen[r] = true
				*areas = append(*areas, r)
			}
		}
	}
}

// rowMatches reports whether every free cell of row y is also free in the
// row above, meaning row y-1 will emit strictly larger candidates.
func rowMatches(occupied []bool, runs []int, y, slots int) bool {
	for x := 0; x < slots; x++ {
		if runs[x] > 0 && occupied[(y-1)*slots+x] {
			return false
		}
	}
	return true
}

// filterContained drops every rectangle fully contained in another.
func filterContained(areas []Rect) []Rect {
	var out []Rect
	for i, r := range areas {
		contained := false
		for j, other := range areas {
			if i == j {
				continue
			}
			if other.Contains(r) && other != r {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, r)
		}
	}
	return out
}
