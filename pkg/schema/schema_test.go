package schema

import (
	"math"
	"testing"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
)

func TestGridRoundTrip(t *testing.T) {
	tr := true
	in := grid.Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 1, H: 1, MinW: 2, MinH: 1, MaxW: 4, MaxH: 6.5},
		{ID: "c", X: 0, Y: 2, W: 4, H: 1, Static: true, Draggable: &tr},
	}

	got, err := ToLayout(FromLayout(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("got %d items, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i].ID != in[i].ID || got[i].Bounds() != in[i].Bounds() {
			t.Errorf("item %d: got %+v, want %+v", i, got[i], in[i])
		}
		if got[i].Static != in[i].Static || got[i].MaxW != in[i].MaxW || got[i].MaxH != in[i].MaxH {
			t.Errorf("item %d attributes differ: got %+v, want %+v", i, got[i], in[i])
		}
	}
	if got[2].Draggable == nil || !*got[2].Draggable {
		t.Error("draggable override lost in round trip")
	}
}

func TestUnboundedMaximaSerializeAbsent(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want *float64
	}{
		{"Zero", 0, nil},
		{"PositiveInfinity", math.Inf(1), nil},
		{"Finite", 3.5, ptr(3.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := FromGridItem(grid.Item{ID: "a", W: 1, H: 1, MaxW: tt.in})
			switch {
			case tt.want == nil && wire.MaxW != nil:
				t.Errorf("got %v, want absent", *wire.MaxW)
			case tt.want != nil && (wire.MaxW == nil || *wire.MaxW != *tt.want):
				t.Errorf("got %v, want %v", wire.MaxW, *tt.want)
			}
		})
	}
}

func TestToLayoutRejectsBadIDs(t *testing.T) {
	_, err := ToLayout([]Item{{X: 0, Y: 0, W: 1, H: 1}})
	if !gkerrors.Is(err, gkerrors.ErrCodeMissingID) {
		t.Errorf("missing id: got %v", err)
	}

	_, err = ToLayout([]Item{
		{ID: "a", W: 1, H: 1},
		{ID: "a", W: 1, H: 1},
	})
	if !gkerrors.Is(err, gkerrors.ErrCodeDuplicateID) {
		t.Errorf("duplicate id: got %v", err)
	}
}

func ptr(v float64) *float64 { return &v }
