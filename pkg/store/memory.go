package store

import (
	"context"
	"slices"
	"sync"
	"time"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/schema"
)

// MemoryStore is an in-process store for development and testing.
// It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]schema.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]schema.Document)}
}

// Get retrieves a document by name.
func (s *MemoryStore) Get(ctx context.Context, name string) (schema.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[name]
	if !ok {
		return schema.Document{}, gkerrors.New(gkerrors.ErrCodeLayoutNotFound, "layout %q not found", name)
	}
	return doc, nil
}

// Put stores a document under its name, replacing any existing one.
func (s *MemoryStore) Put(ctx context.Context, doc schema.Document) error {
	if err := gkerrors.ValidateLayoutName(doc.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}
	s.docs[doc.Name] = doc
	return nil
}

// Delete removes a document by name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[name]; !ok {
		return gkerrors.New(gkerrors.ErrCodeLayoutNotFound, "layout %q not found", name)
	}
	delete(s.docs, name)
	return nil
}

// List returns the stored names in lexical order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
