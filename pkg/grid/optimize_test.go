package grid

import "testing"

func TestOptimize(t *testing.T) {
	tests := []struct {
		name  string
		in    Layout
		slots int
		want  map[string][2]int
	}{
		{
			name: "FillsGapsAroundStatic",
			in: Layout{
				NewItem("a", 2, 2, 2, 2),
				NewItem("b", 0, 5, 1, 1),
				static(NewItem("s", 0, 0, 2, 2)),
			},
			slots: 4,
			want:  map[string][2]int{"s": {0, 0}, "a": {2, 0}, "b": {0, 2}},
		},
		{
			name: "SkipsGapsTooSmallForFootprint",
			in: Layout{
				static(NewItem("s", 1, 0, 3, 1)),
				NewItem("big", 0, 5, 2, 2),
				NewItem("small", 0, 8, 1, 1),
			},
			slots: 4,
			// big cannot use the one-column gap at (0,0); small can.
			want: map[string][2]int{"s": {1, 0}, "big": {0, 1}, "small": {0, 0}},
		},
		{
			name: "AlreadyPackedStaysPut",
			in: Layout{
				NewItem("a", 0, 0, 2, 1),
				NewItem("b", 2, 0, 2, 1),
				NewItem("c", 0, 1, 4, 1),
			},
			slots: 4,
			want:  map[string][2]int{"a": {0, 0}, "b": {2, 0}, "c": {0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimize(tt.in, tt.slots)
			for id, pos := range tt.want {
				assertAt(t, got, id, pos[0], pos[1])
			}
			assertNoOverlap(t, got)
		})
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	in := Layout{
		NewItem("a", 3, 7, 1, 2),
		NewItem("b", 0, 4, 2, 1),
		static(NewItem("s", 2, 1, 2, 2)),
		NewItem("c", 1, 9, 3, 1),
	}

	once := Optimize(in, 4)
	twice := Optimize(once, 4)
	assertSamePositions(t, twice, once)
}
