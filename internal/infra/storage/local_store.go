// Package storage implements upload storage on the local filesystem.
// Each file type maps to a bucket subdirectory under the upload root;
// stored names carry a capture timestamp so they never collide.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// localStore is the local-filesystem implementation of FileStore.
type localStore struct {
	root string // absolute upload root directory
	now  func() time.Time
}

// NewLocalStore is the constructor for localStore. The root comes from the
// uploads config section and is made absolute relative to the working
// directory.
func NewLocalStore(cfg *config.Config) (service.FileStore, error) {
	return newLocalStore(cfg.Uploads.Root, time.Now)
}

func newLocalStore(root string, now func() time.Time) (*localStore, error) {
	if !filepath.IsAbs(root) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "storage: getwd")
		}
		root = filepath.Join(cwd, root)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "storage: mkdir %s", root)
	}

	return &localStore{root: root, now: now}, nil
}

// Save writes the content into the bucket under a timestamped, sanitized
// name and returns both the stored filename and the bucket-relative path.
// The bucket directory is created on demand.
func (s *localStore) Save(bucket, originalName string, content io.Reader) (string, string, error) {
	storedName := s.now().Format("20060102_150405") + "_" + SanitizeFilename(originalName)
	dir := filepath.Join(s.root, bucket)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", errors.Wrapf(err, "storage: mkdir %s", bucket)
	}

	f, err := os.Create(filepath.Join(dir, storedName))
	if err != nil {
		return "", "", errors.Wrapf(err, "storage: create %s", storedName)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", "", errors.Wrapf(err, "storage: write %s", storedName)
	}

	return storedName, bucket + "/" + storedName, nil
}

// SanitizeFilename reduces an untrusted client filename to a safe basename:
// path components are stripped and anything but letters, digits, dash,
// underscore and dot is replaced with an underscore.
func SanitizeFilename(name string) string {
	// Take the basename for both separator conventions.
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), ".")
	if sanitized == "" {
		sanitized = "file"
	}

	return sanitized
}
