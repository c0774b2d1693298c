package grid

import "testing"

// mustItem fails the test when id is absent from the layout.
func mustItem(t *testing.T, l Layout, id string) Item {
	t.Helper()
	it, ok := l.Item(id)
	if !ok {
		t.Fatalf("item %q missing from layout", id)
	}
	return it
}

// assertNoOverlap fails when any two items overlap, ignoring static-static
// pairs (two statics may overlap by design).
func assertNoOverlap(t *testing.T, l Layout) {
	t.Helper()
	for i, a := range l {
		for _, b := range l[i+1:] {
			if a.Static && b.Static {
				continue
			}
			if a.Collides(b) {
				t.Errorf("items %q and %q overlap: %+v vs %+v", a.ID, b.ID, a.Bounds(), b.Bounds())
			}
		}
	}
}

// assertSamePositions fails when any id's geometry differs between layouts.
func assertSamePositions(t *testing.T, got, want Layout) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("layout size = %d, want %d", len(got), len(want))
	}
	for _, w := range want {
		g := mustItem(t, got, w.ID)
		if g.X != w.X || g.Y != w.Y || g.W != w.W || g.H != w.H {
			t.Errorf("item %q = %+v, want %+v", w.ID, g.Bounds(), w.Bounds())
		}
	}
}

// assertAt fails when the item is not at the expected coordinates.
func assertAt(t *testing.T, l Layout, id string, x, y int) {
	t.Helper()
	it := mustItem(t, l, id)
	if it.X != x || it.Y != y {
		t.Errorf("item %q at (%d,%d), want (%d,%d)", id, it.X, it.Y, x, y)
	}
}
