package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
)

// ReadJSON decodes a layout document from r.
//
// The input must be a JSON object with a "slots" count and an "items" array;
// "name" and "compaction" are optional. The decoded items are validated the
// same way [ToLayout] validates them: every item needs a non-empty unique id.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, gkerrors.Wrap(gkerrors.ErrCodeInvalidFormat, err, "decode layout document")
	}
	if doc.Slots <= 0 {
		return Document{}, gkerrors.New(gkerrors.ErrCodeInvalidFormat, "slots must be positive, got %d", doc.Slots)
	}
	if _, err := ToLayout(doc.Items); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ImportJSON reads a layout document from the file at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes a layout document as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a layout document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
