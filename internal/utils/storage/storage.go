package storage

import (
	"context"
	"io"
)

// MediaStorage persists a user-picked recipe image and returns the URI
// string stored verbatim as the recipe's imageUri. The rest of the core
// treats that string as opaque.
type MediaStorage interface {
	PersistImage(ctx context.Context, filename string, file io.Reader) (string, error)
}
