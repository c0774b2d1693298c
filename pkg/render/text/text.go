// Package text renders layouts as fixed-width character grids.
//
// One grid cell maps to a fixed number of characters, each item fills its
// footprint with a single marker rune, and static items are drawn with '#'.
// The output is deterministic, which makes it useful both for terminal
// display and for readable test expectations.
package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/gridkit/pkg/grid"
)

// Options configures text rendering.
type Options struct {
	// CellWidth is the number of characters per grid column. Defaults to 2.
	CellWidth int

	// Empty is the rune for unoccupied cells. Defaults to '.'.
	Empty rune

	// Legend appends an id-to-marker legend below the grid.
	Legend bool
}

// Render draws the layout as a character grid, one text row per grid row.
// Items are marked with the first rune of their id, statics with '#', and
// cells claimed by more than one item with '!' so overlaps stand out.
func Render(l grid.Layout, slots int, opts Options) string {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 2
	}
	if opts.Empty == 0 {
		opts.Empty = '.'
	}

	height := l.Bottom()
	if slots <= 0 || height == 0 {
		return ""
	}

	cells := make([]rune, height*slots)
	for i := range cells {
		cells[i] = opts.Empty
	}
	for _, it := range l {
		mark := marker(it)
		for y := max(it.Y, 0); y < min(it.Bottom(), height); y++ {
			for x := max(it.X, 0); x < min(it.Right(), slots); x++ {
				idx := y*slots + x
				if cells[idx] != opts.Empty {
					cells[idx] = '!'
					continue
				}
				cells[idx] = mark
			}
		}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < slots; x++ {
			b.WriteString(strings.Repeat(string(cells[y*slots+x]), opts.CellWidth))
		}
		b.WriteByte('\n')
	}

	if opts.Legend {
		b.WriteByte('\n')
		b.WriteString(legend(l))
	}
	return b.String()
}

func marker(it grid.Item) rune {
	if it.Static {
		return '#'
	}
	for _, r := range it.ID {
		return r
	}
	return '?'
}

func legend(l grid.Layout) string {
	entries := make([]string, 0, len(l))
	for _, it := range l {
		entries = append(entries, fmt.Sprintf("%c=%s (%d,%d %dx%d)", marker(it), it.ID, it.X, it.Y, it.W, it.H))
	}
	sort.Strings(entries)
	return strings.Join(entries, "\n") + "\n"
}
