package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadDownloadDelete(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	key, err := storage.Upload(ctx, strings.NewReader("photo bytes"), "photos/emp-1/face.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "photos/emp-1/face.jpg", key)

	exists, err := storage.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := storage.Download(ctx, key)
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "photo bytes", string(data))

	require.NoError(t, storage.Delete(ctx, key))
	exists, err = storage.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_GetURL(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := storage.GetURL(ctx, "photos/emp-1/face.jpg", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/photos/emp-1/face.jpg", url)
}

func TestLocalStorage_RejectsPathTraversal(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = storage.Upload(ctx, strings.NewReader("x"), "../outside.txt", "text/plain")
	assert.Error(t, err)
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.Delete(ctx, "photos/none.jpg"))
}
