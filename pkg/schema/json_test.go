package schema

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
)

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr gkerrors.Code
	}{
		{
			name: "Valid",
			in: `{
				"name": "dashboard",
				"slots": 12,
				"compaction": "vertical",
				"items": [
					{"id": "a", "x": 0, "y": 0, "w": 6, "h": 4},
					{"id": "b", "x": 6, "y": 0, "w": 6, "h": 4, "isStatic": true}
				]
			}`,
		},
		{
			name:    "Malformed",
			in:      `{"slots": 12, "items": [`,
			wantErr: gkerrors.ErrCodeInvalidFormat,
		},
		{
			name:    "MissingSlots",
			in:      `{"items": []}`,
			wantErr: gkerrors.ErrCodeInvalidFormat,
		},
		{
			name:    "ItemWithoutID",
			in:      `{"slots": 4, "items": [{"x": 0, "y": 0, "w": 1, "h": 1}]}`,
			wantErr: gkerrors.ErrCodeMissingID,
		},
		{
			name:    "DuplicateIDs",
			in:      `{"slots": 4, "items": [{"id": "a", "w": 1, "h": 1}, {"id": "a", "w": 1, "h": 1}]}`,
			wantErr: gkerrors.ErrCodeDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadJSON(strings.NewReader(tt.in))
			if tt.wantErr != "" {
				if !gkerrors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want code %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.Name != "dashboard" || doc.Slots != 12 || len(doc.Items) != 2 {
				t.Errorf("decoded %+v", doc)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := Document{
		Name:  "board",
		Slots: 4,
		Items: []Item{
			{ID: "a", X: 0, Y: 0, W: 2, H: 2},
			{ID: "b", X: 2, Y: 0, W: 2, H: 2, MaxW: ptr(3)},
		},
	}

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(buf.String(), "Inf") {
		t.Fatalf("numeric infinity leaked into output:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Name != doc.Name || got.Slots != doc.Slots || len(got.Items) != 2 {
		t.Errorf("got %+v", got)
	}
	if got.Items[1].MaxW == nil || *got.Items[1].MaxW != 3 {
		t.Errorf("maxW lost: %+v", got.Items[1])
	}
}

func TestImportExportFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	doc := Document{
		Name:  "saved",
		Slots: 8,
		Items: []Item{{ID: "a", W: 2, H: 2}},
	}

	if err := ExportJSON(doc, path); err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.Name != "saved" || got.Slots != 8 || len(got.Items) != 1 {
		t.Errorf("got %+v", got)
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
