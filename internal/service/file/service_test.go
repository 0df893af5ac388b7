package file

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploads map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: map[string][]byte{}}
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.uploads[path] = data
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.uploads[path])), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.uploads, path)
	return nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.uploads[path]
	return ok, nil
}

func testPNG(t *testing.T, width, height int) *bytes.Buffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestUploadEmployeePhoto(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	service := NewFileService(storage)

	key, err := service.UploadEmployeePhoto(ctx, "emp-1", testPNG(t, 64, 64), "face.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "photos/emp-1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"), "stored photos are always JPEG")
	require.Contains(t, storage.uploads, key)

	stored, _, err := image.Decode(bytes.NewReader(storage.uploads[key]))
	require.NoError(t, err)
	assert.Equal(t, 64, stored.Bounds().Dx())
}

func TestUploadEmployeePhoto_DownscalesLargeImages(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	service := NewFileService(storage)

	key, err := service.UploadEmployeePhoto(ctx, "emp-1", testPNG(t, 2048, 1024), "big.png")
	require.NoError(t, err)

	stored, _, err := image.Decode(bytes.NewReader(storage.uploads[key]))
	require.NoError(t, err)
	assert.LessOrEqual(t, stored.Bounds().Dx(), maxPhotoDimension)
	assert.LessOrEqual(t, stored.Bounds().Dy(), maxPhotoDimension)
}

func TestUploadEmployeePhoto_RejectsBadExtension(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	service := NewFileService(storage)

	_, err := service.UploadEmployeePhoto(ctx, "emp-1", testPNG(t, 8, 8), "face.gif")
	require.Error(t, err)
	assert.Empty(t, storage.uploads)
}

func TestUploadEmployeePhoto_RejectsNonImageData(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	service := NewFileService(storage)

	_, err := service.UploadEmployeePhoto(ctx, "emp-1", strings.NewReader("not an image"), "face.jpg")
	require.Error(t, err)
	assert.Empty(t, storage.uploads)
}

func TestGetFileURL(t *testing.T) {
	ctx := context.Background()
	service := NewFileService(newFakeStorage())

	url, err := service.GetFileURL(ctx, "photos/emp-1/x.jpg", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/photos/emp-1/x.jpg", url)
}
