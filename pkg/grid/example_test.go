package grid_test

import (
	"fmt"

	"github.com/matzehuels/gridkit/pkg/grid"
)

func ExampleCompact() {
	// Two stacked items with a gap between them.
	l := grid.Layout{
		grid.NewItem("header", 0, 2, 4, 1),
		grid.NewItem("body", 0, 6, 4, 2),
	}

	out := grid.Compact(l, grid.CompactionVertical, 4, false)
	for _, it := range out {
		fmt.Printf("%s at (%d,%d)\n", it.ID, it.X, it.Y)
	}
	// Output:
	// header at (0,0)
	// body at (0,1)
}

func ExampleMoveItem() {
	// Drop "a" onto "b"; "b" is pushed out of the way.
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("b", 0, 2, 2, 2),
	}

	out := grid.MoveItem(l, "a", 0, 2, grid.MoveOptions{
		Slots:      4,
		Compaction: grid.CompactionVertical,
	})
	for _, it := range out {
		fmt.Printf("%s at (%d,%d)\n", it.ID, it.X, it.Y)
	}
	// Output:
	// a at (0,2)
	// b at (0,4)
}

func ExamplePlaceNewItems() {
	existing := grid.Layout{
		grid.NewItem("a", 0, 0, 4, 1),
	}
	added := grid.PlaceNewItems(existing, []grid.Item{
		grid.NewItem("b", grid.AutoPosition, grid.AutoPosition, 2, 1),
		grid.NewItem("c", grid.AutoPosition, grid.AutoPosition, 2, 1),
	}, 4)

	for _, it := range added {
		fmt.Printf("%s at (%d,%d)\n", it.ID, it.X, it.Y)
	}
	// Output:
	// a at (0,0)
	// b at (0,1)
	// c at (2,1)
}

func ExampleFreeAreas() {
	l := grid.Layout{
		grid.NewItem("a", 0, 0, 2, 2),
		grid.NewItem("b", 0, 2, 4, 1),
	}

	for _, area := range grid.FreeAreas(l, 4) {
		fmt.Printf("free %dx%d at (%d,%d)\n", area.W, area.H, area.X, area.Y)
	}
	// Output:
	// free 2x2 at (2,0)
}
