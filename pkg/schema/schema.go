package schema

import (
	"math"
	"time"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
)

// Document is the persisted form of a named layout.
type Document struct {
	Name       string    `json:"name" bson:"name"`
	Slots      int       `json:"slots" bson:"slots"`
	Compaction string    `json:"compaction,omitempty" bson:"compaction,omitempty"`
	Items      []Item    `json:"items" bson:"items"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}

// Item is the wire form of a single grid item. Unbounded maxima are nil
// pointers so they serialize as absent fields.
type Item struct {
	ID          string   `json:"id" bson:"id"`
	X           int      `json:"x" bson:"x"`
	Y           int      `json:"y" bson:"y"`
	W           int      `json:"w" bson:"w"`
	H           int      `json:"h" bson:"h"`
	MinW        int      `json:"minW,omitempty" bson:"min_w,omitempty"`
	MinH        int      `json:"minH,omitempty" bson:"min_h,omitempty"`
	MaxW        *float64 `json:"maxW,omitempty" bson:"max_w,omitempty"`
	MaxH        *float64 `json:"maxH,omitempty" bson:"max_h,omitempty"`
	IsDraggable *bool    `json:"isDraggable,omitempty" bson:"is_draggable,omitempty"`
	IsResizable *bool    `json:"isResizable,omitempty" bson:"is_resizable,omitempty"`
	IsStatic    bool     `json:"isStatic,omitempty" bson:"is_static,omitempty"`
}

// FromGridItem converts an engine item to its wire form.
func FromGridItem(it grid.Item) Item {
	return Item{
		ID:          it.ID,
		X:           it.X,
		Y:           it.Y,
		W:           it.W,
		H:           it.H,
		MinW:        it.MinW,
		MinH:        it.MinH,
		MaxW:        boundPtr(it.MaxW),
		MaxH:        boundPtr(it.MaxH),
		IsDraggable: it.Draggable,
		IsResizable: it.Resizable,
		IsStatic:    it.Static,
	}
}

// FromLayout converts an engine layout to wire items, preserving order.
func FromLayout(l grid.Layout) []Item {
	out := make([]Item, len(l))
	for i, it := range l {
		out[i] = FromGridItem(it)
	}
	return out
}

// GridItem converts the wire item to its engine form. It fails with a
// MISSING_ID error when the id field is empty.
func (it Item) GridItem() (grid.Item, error) {
	if it.ID == "" {
		return grid.Item{}, gkerrors.New(gkerrors.ErrCodeMissingID, "item has no id")
	}
	return grid.Item{
		ID:        it.ID,
		X:         it.X,
		Y:         it.Y,
		W:         it.W,
		H:         it.H,
		MinW:      it.MinW,
		MinH:      it.MinH,
		MaxW:      boundVal(it.MaxW),
		MaxH:      boundVal(it.MaxH),
		Draggable: it.IsDraggable,
		Resizable: it.IsResizable,
		Static:    it.IsStatic,
	}, nil
}

// Layout converts the document's items to an engine layout, rejecting
// missing and duplicate ids.
func (d Document) Layout() (grid.Layout, error) {
	return ToLayout(d.Items)
}

// ToLayout converts wire items to an engine layout, rejecting missing and
// duplicate ids.
func ToLayout(items []Item) (grid.Layout, error) {
	out := make(grid.Layout, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		g, err := it.GridItem()
		if err != nil {
			return nil, gkerrors.Wrap(gkerrors.GetCode(err), err, "item %d", i)
		}
		if seen[g.ID] {
			return nil, gkerrors.New(gkerrors.ErrCodeDuplicateID, "duplicate item id %q", g.ID)
		}
		seen[g.ID] = true
		out = append(out, g)
	}
	return out, nil
}

// FromGrid builds a document around an engine layout.
func FromGrid(name string, l grid.Layout, slots int, compaction grid.CompactionType) Document {
	return Document{
		Name:       name,
		Slots:      slots,
		Compaction: compaction.String(),
		Items:      FromLayout(l),
		UpdatedAt:  time.Now().UTC(),
	}
}

func boundPtr(v float64) *float64 {
	if v == 0 || math.IsInf(v, 1) {
		return nil
	}
	return &v
}

func boundVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
