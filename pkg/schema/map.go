package schema

import (
	"encoding/json"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
)

// ItemFromMap decodes one item from a generic string-keyed map, the shape a
// JSON decoder or an embedding host naturally produces. Numeric values may be
// float64, any integer type, or json.Number. Unknown keys are ignored.
func ItemFromMap(m map[string]any) (Item, error) {
	id, _ := m["id"].(string)
	if id == "" {
		return Item{}, gkerrors.New(gkerrors.ErrCodeMissingID, "item map has no id")
	}

	it := Item{ID: id}
	var err error
	for _, f := range []struct {
		key string
		dst *int
	}{
		{"x", &it.X}, {"y", &it.Y}, {"w", &it.W}, {"h", &it.H},
		{"minW", &it.MinW}, {"minH", &it.MinH},
	} {
		v, ok := m[f.key]
		if !ok {
			continue
		}
		if *f.dst, err = intVal(v); err != nil {
			return Item{}, gkerrors.Wrap(gkerrors.ErrCodeInvalidFormat, err, "item %q field %q", id, f.key)
		}
	}

	for _, f := range []struct {
		key string
		dst **float64
	}{
		{"maxW", &it.MaxW}, {"maxH", &it.MaxH},
	} {
		v, ok := m[f.key]
		if !ok || v == nil {
			continue
		}
		fv, err := floatVal(v)
		if err != nil {
			return Item{}, gkerrors.Wrap(gkerrors.ErrCodeInvalidFormat, err, "item %q field %q", id, f.key)
		}
		*f.dst = &fv
	}

	if v, ok := m["isStatic"].(bool); ok {
		it.IsStatic = v
	}
	if v, ok := m["isDraggable"].(bool); ok {
		b := v
		it.IsDraggable = &b
	}
	if v, ok := m["isResizable"].(bool); ok {
		b := v
		it.IsResizable = &b
	}
	return it, nil
}

// Map encodes the item as a generic string-keyed map, mirroring
// [ItemFromMap]. Optional fields at their zero value are omitted.
func (it Item) Map() map[string]any {
	m := map[string]any{
		"id": it.ID,
		"x":  it.X,
		"y":  it.Y,
		"w":  it.W,
		"h":  it.H,
	}
	if it.MinW != 0 {
		m["minW"] = it.MinW
	}
	if it.MinH != 0 {
		m["minH"] = it.MinH
	}
	if it.MaxW != nil {
		m["maxW"] = *it.MaxW
	}
	if it.MaxH != nil {
		m["maxH"] = *it.MaxH
	}
	if it.IsDraggable != nil {
		m["isDraggable"] = *it.IsDraggable
	}
	if it.IsResizable != nil {
		m["isResizable"] = *it.IsResizable
	}
	if it.IsStatic {
		m["isStatic"] = true
	}
	return m
}

// ItemsFromMaps decodes a slice of item maps, keeping order.
func ItemsFromMaps(ms []map[string]any) ([]Item, error) {
	out := make([]Item, 0, len(ms))
	for i, m := range ms {
		it, err := ItemFromMap(m)
		if err != nil {
			return nil, gkerrors.Wrap(gkerrors.GetCode(err), err, "item %d", i)
		}
		out = append(out, it)
	}
	return out, nil
}

func intVal(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	default:
		return 0, gkerrors.New(gkerrors.ErrCodeInvalidFormat, "not a number: %T", v)
	}
}

func floatVal(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, gkerrors.New(gkerrors.ErrCodeInvalidFormat, "not a number: %T", v)
	}
}
