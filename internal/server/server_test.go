package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridkit/pkg/cache"
	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/pipeline"
	"github.com/matzehuels/gridkit/pkg/schema"
	"github.com/matzehuels/gridkit/pkg/store"
)

func newTestHandler() http.Handler {
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, log.New(io.Discard))
	return New(store.NewMemoryStore(), runner, log.New(io.Discard))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeDoc(t *testing.T, rec *httptest.ResponseRecorder) schema.Document {
	t.Helper()
	var doc schema.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return doc
}

const testLayout = `{
	"slots": 4,
	"compaction": "vertical",
	"items": [
		{"id": "a", "x": 0, "y": 0, "w": 2, "h": 2},
		{"id": "b", "x": 0, "y": 2, "w": 2, "h": 2}
	]
}`

func TestHealth(t *testing.T) {
	h := newTestHandler()
	rec := do(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestLayoutCRUD(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h, http.MethodPut, "/v1/layouts/dashboard", testLayout)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}
	doc := decodeDoc(t, rec)
	if doc.Name != "dashboard" {
		t.Errorf("name = %q, want %q", doc.Name, "dashboard")
	}
	if doc.UpdatedAt.IsZero() {
		t.Error("put should stamp UpdatedAt")
	}

	rec = do(t, h, http.MethodGet, "/v1/layouts/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if got := decodeDoc(t, rec); len(got.Items) != 2 {
		t.Errorf("got %d items, want 2", len(got.Items))
	}

	rec = do(t, h, http.MethodGet, "/v1/layouts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list["layouts"]) != 1 || list["layouts"][0] != "dashboard" {
		t.Errorf("layouts = %v, want [dashboard]", list["layouts"])
	}

	rec = do(t, h, http.MethodDelete, "/v1/layouts/dashboard", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/v1/layouts/dashboard", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPutAssignsMissingIDs(t *testing.T) {
	h := newTestHandler()

	body := `{"slots": 4, "items": [{"x": 0, "y": 0, "w": 2, "h": 2}]}`
	rec := do(t, h, http.MethodPut, "/v1/layouts/anon", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}
	doc := decodeDoc(t, rec)
	if len(doc.Items) != 1 || doc.Items[0].ID == "" {
		t.Errorf("item should have a generated id, got %+v", doc.Items)
	}
}

func TestPutRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"NotJSON", "{"},
		{"ZeroSlots", `{"slots": 0, "items": []}`},
		{"DuplicateIDs", `{"slots": 4, "items": [{"id": "a", "w": 1, "h": 1}, {"id": "a", "w": 1, "h": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			rec := do(t, h, http.MethodPut, "/v1/layouts/bad", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error == "" {
				t.Error("error body should carry a message")
			}
		})
	}
}

func TestOpsAppliesAndPersists(t *testing.T) {
	h := newTestHandler()
	do(t, h, http.MethodPut, "/v1/layouts/board", testLayout)

	ops := `[{"op": "move", "id": "a", "x": 0, "y": 4, "userAction": true}]`
	rec := do(t, h, http.MethodPost, "/v1/layouts/board/ops", ops)
	if rec.Code != http.StatusOK {
		t.Fatalf("ops status = %d: %s", rec.Code, rec.Body.String())
	}

	// Moving a below b and compacting swaps their rows.
	rec = do(t, h, http.MethodGet, "/v1/layouts/board", "")
	doc := decodeDoc(t, rec)
	for _, it := range doc.Items {
		switch it.ID {
		case "a":
			if it.Y != 2 {
				t.Errorf("a.Y = %d, want 2", it.Y)
			}
		case "b":
			if it.Y != 0 {
				t.Errorf("b.Y = %d, want 0", it.Y)
			}
		}
	}
}

func TestOpsErrors(t *testing.T) {
	h := newTestHandler()
	do(t, h, http.MethodPut, "/v1/layouts/board", testLayout)

	rec := do(t, h, http.MethodPost, "/v1/layouts/missing/ops", `[{"op": "compact"}]`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing layout status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	rec = do(t, h, http.MethodPost, "/v1/layouts/board/ops", `[{"op": "teleport"}]`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown op status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec = do(t, h, http.MethodPost, "/v1/layouts/board/ops", "not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad script status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAreasEndpoint(t *testing.T) {
	h := newTestHandler()

	// 2x4 items in the left half of a 4-slot grid leave a 2x4 hole.
	do(t, h, http.MethodPut, "/v1/layouts/board", testLayout)

	rec := do(t, h, http.MethodGet, "/v1/layouts/board/areas", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("areas status = %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string][]grid.Rect
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode areas: %v", err)
	}
	want := grid.Rect{X: 2, Y: 0, W: 2, H: 4}
	if len(body["areas"]) != 1 || body["areas"][0] != want {
		t.Errorf("areas = %v, want [%v]", body["areas"], want)
	}

	rec = do(t, h, http.MethodGet, "/v1/layouts/missing/areas", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing layout status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCompactEndpoint(t *testing.T) {
	h := newTestHandler()

	body := `{"slots": 4, "items": [{"id": "a", "x": 0, "y": 3, "w": 2, "h": 2}]}`
	rec := do(t, h, http.MethodPost, "/v1/compact?compaction=vertical", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("compact status = %d: %s", rec.Code, rec.Body.String())
	}
	doc := decodeDoc(t, rec)
	if doc.Items[0].Y != 0 {
		t.Errorf("a.Y = %d, want 0", doc.Items[0].Y)
	}
}

func TestRenderEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h, http.MethodPost, "/v1/render?format=text", testLayout)
	if rec.Code != http.StatusOK {
		t.Fatalf("render status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}
	if !strings.Contains(rec.Body.String(), "a") {
		t.Errorf("text output should show item markers, got %q", rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, "/v1/render?format=hologram", testLayout)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unsupported format status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
