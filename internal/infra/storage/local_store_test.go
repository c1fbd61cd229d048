package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
}

func TestLocalStore_SaveRoutesToBucket(t *testing.T) {
	store, err := newLocalStore(t.TempDir(), fixedClock)
	require.NoError(t, err)

	storedName, relPath, err := store.Save("products", "camera.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "20240315_093000_camera.jpg", storedName)
	assert.Equal(t, "products/20240315_093000_camera.jpg", relPath)

	data, err := os.ReadFile(filepath.Join(store.root, "products", storedName))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestLocalStore_CreatesBucketOnDemand(t *testing.T) {
	store, err := newLocalStore(t.TempDir(), fixedClock)
	require.NoError(t, err)

	_, _, err = store.Save("other", "notes.txt", strings.NewReader("x"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(store.root, "other"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"camera.jpg", "camera.jpg"},
		{"price list 2024.xlsx", "price_list_2024.xlsx"},
		{"../../etc/passwd", "passwd"},
		{`C:\temp\report.pdf`, "report.pdf"},
		{"árbol.png", "_rbol.png"},
		{"...", "file"},
		{"", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
