package grid

import "testing"

func TestItemCollides(t *testing.T) {
	base := NewItem("a", 2, 2, 2, 2)

	tests := []struct {
		name  string
		other Item
		want  bool
	}{
		{"Overlapping", NewItem("b", 3, 3, 2, 2), true},
		{"Contained", NewItem("b", 2, 2, 1, 1), true},
		{"TouchingRightEdge", NewItem("b", 4, 2, 2, 2), false},
		{"TouchingBottomEdge", NewItem("b", 2, 4, 2, 2), false},
		{"TouchingCorner", NewItem("b", 4, 4, 1, 1), false},
		{"Disjoint", NewItem("b", 6, 0, 1, 1), false},
		{"Itself", base, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Collides(tt.other); got != tt.want {
				t.Errorf("Collides(%+v) = %v, want %v", tt.other.Bounds(), got, tt.want)
			}
			if got := tt.other.Collides(base); got != tt.want {
				t.Errorf("Collides is not symmetric for %+v", tt.other.Bounds())
			}
		})
	}
}

func TestLayoutBottom(t *testing.T) {
	if got := (Layout{}).Bottom(); got != 0 {
		t.Errorf("empty layout bottom = %d", got)
	}

	l := Layout{
		NewItem("a", 0, 0, 1, 2),
		NewItem("b", 2, 3, 1, 4),
	}
	if got := l.Bottom(); got != 7 {
		t.Errorf("bottom = %d, want 7", got)
	}
}

func TestLayoutFirstCollision(t *testing.T) {
	l := Layout{
		NewItem("a", 0, 0, 2, 2),
		NewItem("b", 1, 1, 2, 2),
	}

	// Same-ID entries are skipped, list order decides among the rest.
	hit, ok := l.FirstCollision(NewItem("b", 0, 0, 4, 4))
	if !ok || hit.ID != "a" {
		t.Fatalf("got %v %v, want a", hit.ID, ok)
	}

	if _, ok := l.FirstCollision(NewItem("c", 4, 4, 1, 1)); ok {
		t.Error("expected no collision")
	}
}

func TestLayoutClone(t *testing.T) {
	l := Layout{NewItem("a", 0, 0, 1, 1)}
	c := l.Clone()
	c[0].X = 9

	if l[0].X != 0 {
		t.Error("clone shares backing array")
	}
}

func TestBoundingBox(t *testing.T) {
	items := []Item{
		NewItem("a", 1, 2, 2, 1),
		NewItem("b", 3, 4, 1, 3),
	}

	want := Rect{X: 1, Y: 2, W: 3, H: 5}
	if got := BoundingBox(items); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestItemSizeBounds(t *testing.T) {
	it := Item{ID: "a", W: 2, H: 2}
	minW, minH := it.minSize()
	if minW != 1 || minH != 1 {
		t.Errorf("defaults: got (%d,%d), want (1,1)", minW, minH)
	}

	it.MinW, it.MinH = 2, 3
	minW, minH = it.minSize()
	if minW != 2 || minH != 3 {
		t.Errorf("got (%d,%d), want (2,3)", minW, minH)
	}

	maxW, _ := it.maxSize()
	if clampW(it, 50) != 50 {
		t.Errorf("unbounded width clamped, maxW=%v", maxW)
	}

	it.MaxW = 4.9
	if got := clampW(it, 50); got != 4 {
		t.Errorf("fractional max: got %d, want 4", got)
	}
}
