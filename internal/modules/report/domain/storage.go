package domain

import (
	"context"
	"io"
)

// ArchiveStorage persists generated assignment reports. Implemented by the
// local filesystem for single-host installs and by S3 for shared archives.
type ArchiveStorage interface {
	// Store writes the report under key and returns its location.
	Store(ctx context.Context, key string, content io.Reader) (string, error)
}
