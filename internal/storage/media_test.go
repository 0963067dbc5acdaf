package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaStoreSave(t *testing.T) {
	ctx := context.Background()

	store, err := NewMediaStore(ctx, "mem://", "https://media.example.com/images")
	require.NoError(t, err)
	defer store.Close()

	url, err := store.Save(ctx, "Photo.JPG", "image/jpeg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://media.example.com/images/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	// The object must exist under the key derived from the URL.
	key := strings.TrimPrefix(url, "https://media.example.com/images/")
	data, err := store.bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestMediaStoreSaveWithoutExtension(t *testing.T) {
	ctx := context.Background()

	store, err := NewMediaStore(ctx, "mem://", "https://media.example.com")
	require.NoError(t, err)
	defer store.Close()

	url, err := store.Save(ctx, "upload", "application/octet-stream", strings.NewReader("data"))
	require.NoError(t, err)
	assert.NotContains(t, strings.TrimPrefix(url, "https://"), "//")
}
