package grid

import "testing"

func TestSorted(t *testing.T) {
	tests := []struct {
		name string
		in   Layout
		axis Axis
		want []string
	}{
		{
			name: "VerticalByRowThenColumn",
			in: Layout{
				NewItem("c", 2, 1, 1, 1),
				NewItem("a", 0, 0, 1, 1),
				NewItem("b", 3, 0, 1, 1),
			},
			axis: AxisVertical,
			want: []string{"a", "b", "c"},
		},
		{
			name: "HorizontalByColumnThenRow",
			in: Layout{
				NewItem("c", 2, 0, 1, 1),
				NewItem("b", 0, 3, 1, 1),
				NewItem("a", 0, 1, 1, 1),
			},
			axis: AxisHorizontal,
			want: []string{"a", "b", "c"},
		},
		{
			name: "StaticWinsExactTie",
			in: Layout{
				NewItem("a", 1, 1, 2, 2),
				static(NewItem("s", 1, 1, 1, 1)),
			},
			axis: AxisVertical,
			want: []string{"s", "a"},
		},
		{
			name: "ListOrderBreaksDynamicTie",
			in: Layout{
				NewItem("first", 0, 0, 2, 2),
				NewItem("second", 0, 0, 1, 1),
			},
			axis: AxisVertical,
			want: []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sorted(tt.in, tt.axis)
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSortedLeavesInputAlone(t *testing.T) {
	in := Layout{
		NewItem("b", 0, 5, 1, 1),
		NewItem("a", 0, 0, 1, 1),
	}

	_ = Sorted(in, AxisVertical)

	if in[0].ID != "b" || in[1].ID != "a" {
		t.Errorf("input reordered: %q, %q", in[0].ID, in[1].ID)
	}
}

func TestAxisString(t *testing.T) {
	if got := AxisVertical.String(); got != "vertical" {
		t.Errorf("got %q", got)
	}
	if got := AxisHorizontal.String(); got != "horizontal" {
		t.Errorf("got %q", got)
	}
}
