package store

import "context"

// Repo is the typed repository instantiated once per entity. It is the same
// five operations for every entity; the dual-backend branching lives entirely
// in the Store implementation handed in at construction.
type Repo[T any] struct {
	store      Store
	collection string
}

// NewRepo binds entity type T to a collection on the selected backend.
func NewRepo[T any](s Store, collection string) *Repo[T] {
	return &Repo[T]{store: s, collection: collection}
}

// Collection returns the underlying collection name.
func (r *Repo[T]) Collection() string {
	return r.collection
}

func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	docs, err := r.store.List(ctx, r.collection)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var entity T
		if err := FromDocument(doc, &entity); err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (r *Repo[T]) Get(ctx context.Context, id string) (T, error) {
	var entity T

	doc, err := r.store.Get(ctx, r.collection, id)
	if err != nil {
		return entity, err
	}
	if err := FromDocument(doc, &entity); err != nil {
		return entity, err
	}
	return entity, nil
}

// Create persists entity and returns it complete with its assigned id.
func (r *Repo[T]) Create(ctx context.Context, entity T) (T, error) {
	var created T

	doc, err := ToDocument(entity)
	if err != nil {
		return created, err
	}

	stored, err := r.store.Create(ctx, r.collection, doc)
	if err != nil {
		return created, err
	}
	if err := FromDocument(stored, &created); err != nil {
		return created, err
	}
	return created, nil
}

// Update merges fields into the stored record. Fields not mentioned keep
// their current values.
func (r *Repo[T]) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Update(ctx, r.collection, id, fields)
}

func (r *Repo[T]) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.collection, id)
}
