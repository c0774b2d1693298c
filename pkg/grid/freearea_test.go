package grid

import "testing"

func TestFreeAreas(t *testing.T) {
	tests := []struct {
		name  string
		in    Layout
		slots int
		want  []Rect
	}{
		{
			name: "SingleRectangularHole",
			in: Layout{
				NewItem("a", 0, 0, 2, 2),
				NewItem("b", 0, 2, 4, 1),
			},
			slots: 4,
			want:  []Rect{{X: 2, Y: 0, W: 2, H: 2}},
		},
		{
			name: "LShapedHoleYieldsBothMaximals",
			in: Layout{
				NewItem("a", 0, 0, 2, 1),
				NewItem("b", 0, 2, 4, 1),
			},
			slots: 4,
			want: []Rect{
				{X: 2, Y: 0, W: 2, H: 2},
				{X: 0, Y: 1, W: 4, H: 1},
			},
		},
		{
			name: "FullyOccupiedHasNone",
			in: Layout{
				NewItem("a", 0, 0, 4, 2),
			},
			slots: 4,
			want:  nil,
		},
		{
			name:  "EmptyLayoutHasNone",
			in:    Layout{},
			slots: 4,
			want:  nil,
		},
		{
			name: "StaticsCountAsObstacles",
			in: Layout{
				static(NewItem("s", 0, 0, 3, 1)),
				NewItem("a", 0, 1, 4, 1),
			},
			slots: 4,
			want:  []Rect{{X: 3, Y: 0, W: 1, H: 1}},
		},
		{
			name: "OverhangBeyondSlotsIgnored",
			in: Layout{
				NewItem("a", 2, 0, 5, 1),
				NewItem("b", 0, 1, 4, 1),
			},
			slots: 4,
			want:  []Rect{{X: 0, Y: 0, W: 2, H: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeAreas(tt.in, tt.slots)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d areas %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("area %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFreeAreasDisjointFromItems(t *testing.T) {
	l := Layout{
		NewItem("a", 0, 0, 2, 3),
		NewItem("b", 3, 1, 1, 2),
		static(NewItem("s", 2, 4, 2, 1)),
		NewItem("c", 0, 5, 1, 2),
	}

	for _, area := range FreeAreas(l, 4) {
		for _, it := range l {
			if area.Overlaps(it.Bounds()) {
				t.Errorf("area %+v overlaps item %s at %+v", area, it.ID, it.Bounds())
			}
		}
	}
}
