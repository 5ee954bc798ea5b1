// Package memory provides an in-process document.Store. It enforces the same
// version check a remote store does and is used by tests and dry runs.
package memory

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/agentstation/tablesync/pkg/document"
	"github.com/agentstation/tablesync/pkg/errors"
)

// Option is a function that configures a Store.
type Option func(*Store) error

// WithDocument preloads doc into the store.
func WithDocument(doc document.Document) Option {
	return func(s *Store) error {
		if doc.ID == "" {
			return fmt.Errorf("document id cannot be empty")
		}
		s.docs[doc.ID] = doc
		return nil
	}
}

// WithSpaceKey sets the space key reported for documents stored without one.
func WithSpaceKey(key string) Option {
	return func(s *Store) error {
		s.spaceKey = key
		return nil
	}
}

// Store is a thread-safe in-memory document store.
type Store struct {
	mu       sync.RWMutex
	docs     map[string]document.Document
	spaceKey string
	replaces int
}

var _ document.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New(opts ...Option) (*Store, error) {
	s := &Store{docs: make(map[string]document.Document)}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("applying memory option: %w", err)
		}
	}
	return s, nil
}

// Fetch returns a copy of the stored document.
func (s *Store) Fetch(ctx context.Context, id string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewFetchError(id, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, errors.NewFetchError(id, errors.NewNotFoundError("document", id))
	}
	if doc.SpaceKey == "" {
		doc.SpaceKey = s.spaceKey
	}
	return &doc, nil
}

// Replace stores body as the next version of document id.
func (s *Store) Replace(ctx context.Context, id, title string, version int, body string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.NewCommitError(id, 0, "context done", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return http.StatusNotFound, errors.NewCommitError(id, http.StatusNotFound, "document not found",
			errors.NewNotFoundError("document", id))
	}
	if version != doc.Version+1 {
		return http.StatusConflict, errors.NewCommitConflictError(id, version, http.StatusConflict,
			fmt.Sprintf("stored version is %d", doc.Version))
	}

	doc.Title = title
	doc.Version = version
	doc.Body = body
	s.docs[id] = doc
	s.replaces++
	return http.StatusOK, nil
}

// Put stores doc, overwriting any existing document with the same ID.
func (s *Store) Put(doc document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

// Get returns a copy of the stored document without the fetch error wrapping.
func (s *Store) Get(id string) (document.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Bump advances the stored version of id as if another writer had committed.
func (s *Store) Bump(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.docs[id]; ok {
		doc.Version++
		s.docs[id] = doc
	}
}

// Replaces returns the number of successful replace calls.
func (s *Store) Replaces() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replaces
}
