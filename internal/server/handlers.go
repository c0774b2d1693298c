package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/pipeline"
	"github.com/matzehuels/gridkit/pkg/schema"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleList returns all stored layout names.
func (s *Server) handleList(w http.ResponseWriter, req *http.Request) {
	names, err := s.store.List(req.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"layouts": names})
}

// handleGet returns one stored layout document.
func (s *Server) handleGet(w http.ResponseWriter, req *http.Request) {
	doc, err := s.store.Get(req.Context(), chi.URLParam(req, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handlePut creates or replaces a layout. The URL name wins over the body's,
// and items arriving without an id get a generated one before validation.
func (s *Server) handlePut(w http.ResponseWriter, req *http.Request) {
	var doc schema.Document
	if err := json.NewDecoder(req.Body).Decode(&doc); err != nil {
		writeError(w, gkerrors.Wrap(gkerrors.ErrCodeInvalidFormat, err, "decode layout document"))
		return
	}
	if doc.Slots <= 0 {
		writeError(w, gkerrors.New(gkerrors.ErrCodeInvalidFormat, "slots must be positive, got %d", doc.Slots))
		return
	}
	for i := range doc.Items {
		if doc.Items[i].ID == "" {
			doc.Items[i].ID = uuid.NewString()
		}
	}
	if _, err := schema.ToLayout(doc.Items); err != nil {
		writeError(w, err)
		return
	}
	doc.Name = chi.URLParam(req, "name")
	doc.UpdatedAt = time.Now().UTC()

	if err := s.store.Put(req.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleDelete removes a stored layout.
func (s *Server) handleDelete(w http.ResponseWriter, req *http.Request) {
	if err := s.store.Delete(req.Context(), chi.URLParam(req, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleOps applies an operation script to a stored layout and persists
// the result.
func (s *Server) handleOps(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")

	var ops []pipeline.Op
	if err := json.NewDecoder(req.Body).Decode(&ops); err != nil {
		writeError(w, gkerrors.Wrap(gkerrors.ErrCodeInvalidFormat, err, "parse operations"))
		return
	}

	doc, err := s.store.Get(req.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Apply(req.Context(), doc, ops)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.Put(req.Context(), result); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleAreas returns the maximal free rectangles of a stored layout.
func (s *Server) handleAreas(w http.ResponseWriter, req *http.Request) {
	doc, err := s.store.Get(req.Context(), chi.URLParam(req, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	l, err := doc.Layout()
	if err != nil {
		writeError(w, err)
		return
	}

	areas, _, err := s.runner.FreeAreas(req.Context(), l, doc.Slots)
	if err != nil {
		writeError(w, err)
		return
	}
	if areas == nil {
		areas = []grid.Rect{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"areas": areas})
}

// handleCompact compacts a posted document without storing it. The strategy
// defaults to the document's own and can be overridden with ?compaction=.
func (s *Server) handleCompact(w http.ResponseWriter, req *http.Request) {
	doc, err := schema.ReadJSON(req.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	op := pipeline.Op{Kind: pipeline.OpCompact}
	if v := req.URL.Query().Get("compaction"); v != "" {
		op.Compaction = v
	}

	result, err := s.runner.Apply(req.Context(), doc, []pipeline.Op{op})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleRender renders a posted document. The format defaults to text and
// can be set with ?format=.
func (s *Server) handleRender(w http.ResponseWriter, req *http.Request) {
	doc, err := schema.ReadJSON(req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	l, err := doc.Layout()
	if err != nil {
		writeError(w, err)
		return
	}

	format := req.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatText
	}

	data, err := s.runner.Render(req.Context(), l, doc.Slots, format)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", renderContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// renderContentType maps an output format to its MIME type.
func renderContentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatJSON:
		return "application/json"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "text/plain; charset=utf-8"
	}
}
