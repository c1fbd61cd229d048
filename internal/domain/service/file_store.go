package service

import "io"

// FileStore defines the interface for physical upload storage. Buckets are
// named subdirectories under a common root; files are append-only.
type FileStore interface {
	// Save writes the content into the bucket under a collision-resistant
	// name derived from a capture timestamp and the sanitized original name,
	// creating the bucket on demand. It returns the stored filename (without
	// the bucket) and the bucket-relative path recorded in the registry.
	Save(bucket, originalName string, content io.Reader) (storedName, relPath string, err error)
}
