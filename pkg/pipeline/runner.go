package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridkit/pkg/cache"
	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/observability"
	"github.com/matzehuels/gridkit/pkg/render/support"
	"github.com/matzehuels/gridkit/pkg/render/svg"
	"github.com/matzehuels/gridkit/pkg/render/text"
	"github.com/matzehuels/gridkit/pkg/schema"
)

// Runner executes layout operations with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Apply runs the operation sequence against the document's layout and
// returns the updated document. Operations apply in order; the first failing
// operation aborts the run and the input document is returned untouched.
func (r *Runner) Apply(ctx context.Context, doc schema.Document, ops []Op) (schema.Document, error) {
	l, err := doc.Layout()
	if err != nil {
		return doc, err
	}
	compaction := grid.CompactionNone
	if doc.Compaction != "" {
		if compaction, err = grid.ParseCompactionType(doc.Compaction); err != nil {
			return doc, err
		}
	}

	for i, op := range ops {
		start := time.Now()
		observability.Engine().OnOperationStart(ctx, op.Kind, len(l))

		next, err := apply(l, doc.Slots, compaction, op)
		observability.Engine().OnOperationComplete(ctx, op.Kind, len(l), time.Since(start), err)
		if err != nil {
			return doc, gkerrors.Wrap(gkerrors.GetCode(err), err, "operation %d (%s)", i, op.Kind)
		}
		l = next

		r.Logger.Debug("applied operation",
			"op", op.Kind,
			"items", len(l),
			"duration", time.Since(start))
	}

	doc.Items = schema.FromLayout(l)
	doc.UpdatedAt = time.Now().UTC()
	return doc, nil
}

// Optimize defragments the layout, consulting the result cache first. The
// second return reports whether the result came from cache.
func (r *Runner) Optimize(ctx context.Context, l grid.Layout, slots int) (grid.Layout, bool, error) {
	key := r.Keyer.ResultKey(layoutHash(l), cache.ResultKeyOpts{Op: "optimize", Slots: slots})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var items []schema.Item
		if err := json.Unmarshal(data, &items); err == nil {
			if cached, err := schema.ToLayout(items); err == nil {
				observability.Cache().OnCacheHit(ctx, "optimize")
				return cached, true, nil
			}
		}
		// Corrupt entry, fall through and recompute.
	}
	observability.Cache().OnCacheMiss(ctx, "optimize")

	start := time.Now()
	observability.Engine().OnOperationStart(ctx, "optimize", len(l))
	out := grid.Optimize(l, slots)
	observability.Engine().OnOperationComplete(ctx, "optimize", len(l), time.Since(start), nil)

	if data, err := json.Marshal(schema.FromLayout(out)); err == nil {
		if err := r.Cache.Set(ctx, key, data, TTLResult); err == nil {
			observability.Cache().OnCacheSet(ctx, "optimize", len(data))
		}
	}
	return out, false, nil
}

// FreeAreas returns the layout's maximal free rectangles, consulting the
// result cache first. The second return reports whether the result came
// from cache.
func (r *Runner) FreeAreas(ctx context.Context, l grid.Layout, slots int) ([]grid.Rect, bool, error) {
	key := r.Keyer.ResultKey(layoutHash(l), cache.ResultKeyOpts{Op: "areas", Slots: slots})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var areas []grid.Rect
		if err := json.Unmarshal(data, &areas); err == nil {
			observability.Cache().OnCacheHit(ctx, "areas")
			return areas, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "areas")

	start := time.Now()
	observability.Engine().OnOperationStart(ctx, "areas", len(l))
	areas := grid.FreeAreas(l, slots)
	observability.Engine().OnOperationComplete(ctx, "areas", len(l), time.Since(start), nil)

	if data, err := json.Marshal(areas); err == nil {
		if err := r.Cache.Set(ctx, key, data, TTLResult); err == nil {
			observability.Cache().OnCacheSet(ctx, "areas", len(data))
		}
	}
	return areas, false, nil
}

// Render produces one output artifact for the layout.
func (r *Runner) Render(ctx context.Context, l grid.Layout, slots int, format string) ([]byte, error) {
	start := time.Now()
	observability.Engine().OnRenderStart(ctx, format)

	out, err := renderFormat(l, slots, format)
	observability.Engine().OnRenderComplete(ctx, format, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("rendered layout",
		"format", format,
		"bytes", len(out),
		"duration", time.Since(start))
	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func renderFormat(l grid.Layout, slots int, format string) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(text.Render(l, slots, text.Options{Legend: true})), nil
	case FormatSVG:
		return svg.Render(l, slots), nil
	case FormatDOT:
		return []byte(support.ToDOT(l, grid.AxisVertical)), nil
	case FormatJSON:
		data, err := json.MarshalIndent(schema.FromLayout(l), "", "  ")
		if err != nil {
			return nil, gkerrors.Wrap(gkerrors.ErrCodeInternal, err, "encode layout")
		}
		return data, nil
	default:
		return nil, gkerrors.New(gkerrors.ErrCodeUnsupported, "unknown format %q", format)
	}
}

// layoutHash content-addresses a layout for cache keys. Serialization order
// follows the layout's own item order, so reordering items recomputes; the
// engine treats order as meaningful, and so does the cache.
func layoutHash(l grid.Layout) string {
	data, _ := json.Marshal(schema.FromLayout(l))
	return cache.Hash(data)
}
