// Package schema provides the wire format for grid layouts.
//
// # Overview
//
// This package is the serialization boundary between the layout engine and
// everything outside it: files, HTTP payloads, layout stores, and host
// applications that hand items around as generic string-keyed maps. The
// format is designed for:
//
//   - Embedding: hosts that know nothing about the engine's types can submit
//     plain maps and get plain maps back
//   - Persistence: the same document shape is stored verbatim by the layout
//     store backends
//   - Round-trip preservation: export, re-import, and the engine sees an
//     identical layout
//
// # Document Format
//
// A layout document is a JSON object:
//
//	{
//	  "name": "dashboard",
//	  "slots": 12,
//	  "compaction": "vertical",
//	  "items": [
//	    {"id": "chart", "x": 0, "y": 0, "w": 6, "h": 4},
//	    {"id": "table", "x": 6, "y": 0, "w": 6, "h": 4, "isStatic": true}
//	  ]
//	}
//
// # Item Fields
//
// Required:
//   - id: unique string identifier
//   - x, y, w, h: position and size in grid units
//
// Optional:
//   - minW, minH: lower size bounds (default 1)
//   - maxW, maxH: upper size bounds; absent means unbounded
//   - isDraggable, isResizable: per-item gesture overrides
//   - isStatic: fixed obstacle, never moved by the engine
//
// An unbounded maximum is always serialized as an absent field, never as a
// numeric infinity, so documents stay valid JSON for every consumer.
//
// # Import and Export
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	doc, err := schema.ImportJSON("dashboard.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout, err := doc.Layout()
//
// Both validate the document structure: a missing item id or a duplicate id
// is reported as a structured error with the offending index or id in the
// message. Use [ExportJSON] and [WriteJSON] for the reverse direction.
//
// # Map Form
//
// [ItemFromMap] and [Item.Map] convert a single item to and from a generic
// map[string]any, accepting the numeric types JSON decoders actually produce
// (float64, int, json.Number). This is the entry point for hosts that embed
// the engine behind their own serialization layer.
package schema
