package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no document exists at the requested path.
var ErrNotFound = errors.New("docstore: document not found")

// Document is a raw record read from or written to the store, addressed as
// <collection>/<id>.
type Document struct {
	ID   string
	Data []byte
}

// DocumentStore is the port for the remote keyed document service.
type DocumentStore interface {
	// Read returns the document at <collection>/<id>, or ErrNotFound.
	Read(ctx context.Context, collection, id string) (*Document, error)

	// Query returns every document in the collection whose named field equals
	// value. Result order is unspecified.
	Query(ctx context.Context, collection, field, value string) ([]*Document, error)

	// Write stores data at <collection>/<id>. An empty id asks the store to
	// assign one; the assigned id is returned.
	Write(ctx context.Context, collection, id string, data []byte) (string, error)

	// Delete removes the document at <collection>/<id>. Deleting a missing
	// document is not an error.
	Delete(ctx context.Context, collection, id string) error
}
