// Package store provides the dual-backend document persistence layer: a
// remote MongoDB implementation and a local file-backed fallback, behind one
// collection/document interface. Which implementation a service receives is
// decided once at startup; nothing in here re-checks configuration per call.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get and Update when the targeted id does not
// exist. Delete never returns it; deleting a missing id is a no-op.
var ErrNotFound = errors.New("document not found")

// Document is a raw persisted record. The "id" key holds the opaque string
// identifier assigned at creation.
type Document = map[string]any

// Store is collection-based CRUD over raw documents, implemented by the
// remote Mongo store and the local fallback store. Every logical operation
// runs entirely against one implementation.
type Store interface {
	// List returns the full collection. Ordering is unspecified.
	List(ctx context.Context, collection string) ([]Document, error)
	// Get returns one document by id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Create persists doc and returns it with its assigned id. A non-empty
	// "id" already present in doc is honored (semantic keys, principal ids);
	// otherwise the backend assigns one.
	Create(ctx context.Context, collection string, doc Document) (Document, error)
	// Update merges fields into the existing document, or ErrNotFound.
	Update(ctx context.Context, collection, id string, fields Document) error
	// Delete removes the document unconditionally; missing ids are not an error.
	Delete(ctx context.Context, collection, id string) error
}

// ToDocument converts an entity struct to its raw document form via its JSON
// tags. Both backends persist this shape, which is what keeps their logical
// results interchangeable.
func ToDocument(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal entity -> %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal entity -> %w", err)
	}

	return doc, nil
}

// FromDocument decodes a raw document into out, which must be a pointer.
func FromDocument(doc Document, out any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document -> %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode document -> %w", err)
	}

	return nil
}
