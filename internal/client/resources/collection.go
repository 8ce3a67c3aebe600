package resources

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Collection is a REST collection mounted at <root>/<name>/ with items at
// <root>/<name>/<id>/.
type Collection[T any] struct {
	backend Backend
	name    string
}

func newCollection[T any](b Backend, name string) *Collection[T] {
	return &Collection[T]{backend: b, name: name}
}

// Name returns the collection path segment, e.g. "tasks".
func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) itemURL(id int64) string {
	return c.backend.URL(c.name, strconv.FormatInt(id, 10))
}

// List fetches every item. query may be nil.
func (c *Collection[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	u := c.backend.URL(c.name)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var items []T
	if err := send(ctx, c.backend, http.MethodGet, u, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single item.
func (c *Collection[T]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := send(ctx, c.backend, http.MethodGet, c.itemURL(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts item and returns the stored version.
func (c *Collection[T]) Create(ctx context.Context, item *T) (*T, error) {
	var created T
	if err := send(ctx, c.backend, http.MethodPost, c.backend.URL(c.name), item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the item stored under id.
func (c *Collection[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	var updated T
	if err := send(ctx, c.backend, http.MethodPut, c.itemURL(id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the item stored under id.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	return send(ctx, c.backend, http.MethodDelete, c.itemURL(id), nil, nil)
}
