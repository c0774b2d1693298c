// Package store provides persistence for named layout documents.
//
// The CLI and the HTTP API both load and save layouts by name; this package
// defines the storage interface they share, with implementations for
// different backends:
//   - memory: in-process storage for development and testing
//   - mongo: MongoDB-backed storage for server deployments
//
// A store holds complete [schema.Document] values. Lookups for an unknown
// name return a structured LAYOUT_NOT_FOUND error, so callers can
// distinguish absence from backend failure.
package store

import (
	"context"

	"github.com/matzehuels/gridkit/pkg/schema"
)

// Store persists named layout documents.
type Store interface {
	// Get retrieves a document by name. It fails with a LAYOUT_NOT_FOUND
	// error when no document has that name.
	Get(ctx context.Context, name string) (schema.Document, error)

	// Put stores a document under its name, replacing any existing one.
	Put(ctx context.Context, doc schema.Document) error

	// Delete removes a document by name. Deleting an unknown name fails
	// with a LAYOUT_NOT_FOUND error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
