package client

import (
	"context"
	"fmt"
	"net/http"

	"skillswap/internal/models"
	"skillswap/internal/observability"
)

// resource is the generic CRUD core shared by every concrete client. It is
// parameterized by the entity type plus the remote path pair: the collection
// path answers list reads ("/posts") while the item path answers single-record
// operations ("/post", "/post/{id}").
type resource[T any] struct {
	c              *Client
	singular       string
	plural         string
	collectionPath string
	itemPath       string
	log            *observability.ClientLogger
}

func newResource[T any](c *Client, singular, plural, collectionPath, itemPath string) resource[T] {
	return resource[T]{
		c:              c,
		singular:       singular,
		plural:         plural,
		collectionPath: collectionPath,
		itemPath:       itemPath,
		log:            observability.NewClientLogger(singular),
	}
}

// List fetches the full collection in server order; the client never
// re-sorts.
func (r resource[T]) List(ctx context.Context) ([]T, error) {
	return r.listPath(ctx, r.collectionPath, "fetch "+r.plural)
}

// listPath fetches a collection from an explicit path. Used for the
// resource-specific reads (comments by post, ratings by post).
func (r resource[T]) listPath(ctx context.Context, path, op string) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, r.log, op, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single record by id.
func (r resource[T]) Get(ctx context.Context, id int) (*T, error) {
	if id <= 0 {
		return nil, models.NewValidationError("Invalid " + r.singular + " ID")
	}
	var out T
	op := "fetch " + r.singular
	if err := r.c.do(ctx, r.log, op, http.MethodGet, fmt.Sprintf("%s/%d", r.itemPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits a record without an id; the server assigns identity and
// returns the stored record.
func (r resource[T]) Create(ctx context.Context, payload T) (*T, error) {
	var out T
	op := "create " + r.singular
	if err := r.c.do(ctx, r.log, op, http.MethodPost, r.itemPath, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the whole record server-side; there is no partial-field
// patch semantics.
func (r resource[T]) Update(ctx context.Context, record T) (*T, error) {
	var out T
	op := "update " + r.singular
	if err := r.c.do(ctx, r.log, op, http.MethodPut, r.itemPath, record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a record by id. The response body is drained and discarded;
// an empty or non-JSON body on success is fine.
func (r resource[T]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return models.NewValidationError("Invalid " + r.singular + " ID")
	}
	op := "delete " + r.singular
	return r.c.do(ctx, r.log, op, http.MethodDelete, fmt.Sprintf("%s/%d", r.itemPath, id), nil, nil)
}
