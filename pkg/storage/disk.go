// Package storage abstracts file storage for product media and blog
// cover images behind a Disk interface with local and S3 backends.
package storage

import (
	"context"
	"io"
)

// Disk is a file storage backend.
type Disk interface {
	// Put writes the contents of r to path, overwriting any existing file.
	Put(ctx context.Context, path string, r io.Reader) error
	// Get opens the file at path for reading. Caller closes.
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes the file at path. Missing files are not an error.
	Delete(ctx context.Context, path string) error
	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) (bool, error)
	// URL returns the public URL for path.
	URL(path string) string
}
