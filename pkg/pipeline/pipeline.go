// Package pipeline orchestrates layout operations for the CLI and the API.
//
// This package implements the load → operate → render flow shared by every
// entry point. By centralizing this logic, we ensure consistent behavior
// across all entry points and avoid code duplication.
//
// # Architecture
//
// A pipeline run has three stages:
//
//  1. Load: obtain a layout document (file, store, or request body)
//  2. Operate: apply a declarative sequence of engine operations
//  3. Render: produce output artifacts (text, SVG, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Whole-grid computations (optimize, free areas) consult the result cache
// keyed by layout content, so repeated requests over an unchanged layout
// skip the engine entirely.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, err := runner.Apply(ctx, doc, []pipeline.Op{
//	    {Kind: pipeline.OpMove, ID: "chart", X: 0, Y: 2},
//	    {Kind: pipeline.OpCompact, Compaction: "vertical"},
//	})
package pipeline

import (
	"time"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/schema"
)

// Operation kinds accepted by [Runner.Apply].
const (
	OpCompact   = "compact"
	OpMove      = "move"
	OpMoveGroup = "move-group"
	OpResize    = "resize"
	OpPlace     = "place"
	OpCorrect   = "correct"
	OpOptimize  = "optimize"
)

// Output formats for [Runner.Render].
const (
	FormatText = "text"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// Cache TTLs per result class.
const (
	// TTLResult bounds how long optimize and free-area results live.
	// Results are content-addressed, so the TTL only limits cache growth.
	TTLResult = 24 * time.Hour
)

// Op is one declarative engine operation. The zero values of unused fields
// are ignored; Kind decides which fields apply.
type Op struct {
	// Kind selects the operation.
	Kind string `json:"op"`

	// ID is the target item for move and resize.
	ID string `json:"id,omitempty"`

	// IDs are the cluster members for move-group.
	IDs []string `json:"ids,omitempty"`

	// Target geometry.
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w,omitempty"`
	H int `json:"h,omitempty"`

	// Compaction names the strategy for compact, move, and resize.
	// Empty means the document's own compaction setting.
	Compaction string `json:"compaction,omitempty"`

	// Behavior selects "push" (default) or "shrink" resize resolution.
	Behavior string `json:"behavior,omitempty"`

	// PreventCollision stops resolution after the gesture itself.
	PreventCollision bool `json:"preventCollision,omitempty"`

	// UserAction marks interactive moves, which compact afterwards.
	UserAction bool `json:"userAction,omitempty"`

	// Items are the new items for place.
	Items []schema.Item `json:"items,omitempty"`
}

// apply runs a single operation against the layout.
func apply(l grid.Layout, slots int, compaction grid.CompactionType, op Op) (grid.Layout, error) {
	ctype := compaction
	if op.Compaction != "" {
		parsed, err := grid.ParseCompactionType(op.Compaction)
		if err != nil {
			return nil, err
		}
		ctype = parsed
	}

	switch op.Kind {
	case OpCompact:
		return grid.Compact(l, ctype, slots, false), nil

	case OpMove:
		if op.ID == "" {
			return nil, gkerrors.New(gkerrors.ErrCodeInvalidOperation, "move needs an id")
		}
		return grid.MoveItem(l, op.ID, op.X, op.Y, grid.MoveOptions{
			Slots:            slots,
			Compaction:       ctype,
			PreventCollision: op.PreventCollision,
			IsUserAction:     op.UserAction,
		}), nil

	case OpMoveGroup:
		if len(op.IDs) == 0 {
			return nil, gkerrors.New(gkerrors.ErrCodeInvalidOperation, "move-group needs ids")
		}
		return grid.MoveCluster(l, op.IDs, op.X, op.Y, grid.MoveOptions{
			Slots:            slots,
			Compaction:       ctype,
			PreventCollision: op.PreventCollision,
		}), nil

	case OpResize:
		if op.ID == "" {
			return nil, gkerrors.New(gkerrors.ErrCodeInvalidOperation, "resize needs an id")
		}
		behavior := grid.ResizePush
		switch op.Behavior {
		case "", "push":
		case "shrink":
			behavior = grid.ResizeShrink
		default:
			return nil, gkerrors.New(gkerrors.ErrCodeInvalidOperation, "unknown resize behavior %q", op.Behavior)
		}
		return grid.ResizeItem(l, op.ID, op.X, op.Y, op.W, op.H, grid.ResizeOptions{
			Slots:            slots,
			Compaction:       ctype,
			Behavior:         behavior,
			PreventCollision: op.PreventCollision,
		}), nil

	case OpPlace:
		items, err := schema.ToLayout(op.Items)
		if err != nil {
			return nil, err
		}
		return grid.PlaceNewItems(l, items, slots), nil

	case OpCorrect:
		return grid.CorrectBounds(l, slots), nil

	case OpOptimize:
		return grid.Optimize(l, slots), nil

	default:
		return nil, gkerrors.New(gkerrors.ErrCodeInvalidOperation, "unknown operation %q", op.Kind)
	}
}
