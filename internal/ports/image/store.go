package image

import "context"

// Store uploads raw image bytes and returns an opaque endpoint reference on
// success. Upload failure is the one write-path failure callers get to see.
type Store interface {
	Upload(ctx context.Context, image []byte) (string, error)
}
