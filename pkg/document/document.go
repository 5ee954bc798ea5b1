// Package document defines the versioned-document abstraction the sync
// session reads from and writes back to.
package document

import "context"

// Document is a snapshot of a remote document as returned by a Store.
type Document struct {
	// ID is the store-assigned identifier.
	ID string `json:"id" yaml:"id"`

	// Title is carried through unchanged on replace.
	Title string `json:"title" yaml:"title"`

	// Version is the store's current revision number.
	Version int `json:"version" yaml:"version"`

	// Body holds the document markup in the store's storage representation.
	Body string `json:"body" yaml:"body"`

	// SpaceKey names the container the document lives in, when the store has one.
	SpaceKey string `json:"space_key,omitempty" yaml:"space_key,omitempty"`
}

// Store reads and replaces versioned documents.
//
// Replace submits body as the new content of document id. version must be the
// currently stored version plus one; a store rejects any other value with a
// *errors.CommitConflictError. The returned status code is the store's raw
// response status (HTTP semantics) and is set even when err is non-nil.
type Store interface {
	Fetch(ctx context.Context, id string) (*Document, error)
	Replace(ctx context.Context, id, title string, version int, body string) (int, error)
}
