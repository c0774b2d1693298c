// Package svg renders layouts as standalone SVG documents.
//
// The output is hand-built rather than produced through a drawing library:
// a grid layout is rectangles and labels, and writing the elements directly
// keeps the document small, deterministic, and diffable. Each item becomes a
// <rect> with its id as a label; static items are drawn in a muted fill with
// a dashed outline. A small CSS block highlights items on hover.
package svg

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/gridkit/pkg/grid"
)

const itemInteractionCSS = `
    .item { transition: stroke-width 0.2s ease; }
    .item:hover { stroke-width: 3; }
    .item-label { font-family: ui-monospace, monospace; pointer-events: none; }`

// Option configures the renderer.
type Option func(*renderer)

type renderer struct {
	cellSize int
	gap      int
	showIDs  bool
	fill     string
	stroke   string
	staticFill string
}

// WithCellSize sets the pixel size of one grid cell. Default 48.
func WithCellSize(px int) Option { return func(r *renderer) { r.cellSize = px } }

// WithGap sets the pixel gap between items. Default 4.
func WithGap(px int) Option { return func(r *renderer) { r.gap = px } }

// WithoutLabels omits the id label on each item.
func WithoutLabels() Option { return func(r *renderer) { r.showIDs = false } }

// WithPalette overrides the item fill and stroke colors.
func WithPalette(fill, stroke string) Option {
	return func(r *renderer) { r.fill, r.stroke = fill, stroke }
}

func newRenderer(opts ...Option) renderer {
	r := renderer{
		cellSize:   48,
		gap:        4,
		showIDs:    true,
		fill:       "#dbeafe",
		stroke:     "#1d4ed8",
		staticFill: "#e5e7eb",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Render produces a complete SVG document for the layout. Items are emitted
// in id order so identical layouts always produce identical bytes.
func Render(l grid.Layout, slots int, opts ...Option) []byte {
	r := newRenderer(opts...)

	items := append(grid.Layout(nil), l...)
	slices.SortFunc(items, func(a, b grid.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})

	width := slots * r.cellSize
	height := l.Bottom() * r.cellSize
	if height == 0 {
		height = r.cellSize
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", itemInteractionCSS)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="#ffffff"/>`+"\n", width, height)

	for _, it := range items {
		r.renderItem(&buf, it)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r renderer) renderItem(buf *bytes.Buffer, it grid.Item) {
	x := it.X*r.cellSize + r.gap/2
	y := it.Y*r.cellSize + r.gap/2
	w := it.W*r.cellSize - r.gap
	h := it.H*r.cellSize - r.gap
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	fill, dash := r.fill, ""
	if it.Static {
		fill, dash = r.staticFill, ` stroke-dasharray="6,3"`
	}
	fmt.Fprintf(buf, `  <rect id="item-%s" class="item" x="%d" y="%d" width="%d" height="%d" rx="6" fill="%s" stroke="%s" stroke-width="1.5"%s/>`+"\n",
		escape(it.ID), x, y, w, h, fill, r.stroke, dash)

	if r.showIDs {
		fontSize := r.cellSize / 3
		fmt.Fprintf(buf, `  <text class="item-label" x="%d" y="%d" font-size="%d" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			x+w/2, y+h/2, fontSize, escape(it.ID))
	}
}

func escape(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
