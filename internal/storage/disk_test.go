package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scribehq/scribe/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSavesUnderMediaPath(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "photo.png", "image/png",
		strings.NewReader("image bytes"), 11)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/media/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/media/")))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestDiskStoreIgnoresClientChosenName(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "../../etc/passwd", "text/plain",
		strings.NewReader("nope"), 4)
	require.NoError(t, err)

	// The stored name is generated; only the extension survives.
	assert.NotContains(t, path, "..")
	assert.NotContains(t, path, "passwd")
}

func TestDiskStoreDistinctNamesForSameFilename(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save(context.Background(), "same.jpg", "image/jpeg", strings.NewReader("a"), 1)
	require.NoError(t, err)
	b, err := store.Save(context.Background(), "same.jpg", "image/jpeg", strings.NewReader("b"), 1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
