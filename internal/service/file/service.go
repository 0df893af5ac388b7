package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sistemacontrol/asistencia-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

// maxPhotoDimension bounds the longest side of a stored roster photo.
const maxPhotoDimension = 512

type FileService interface {
	// UploadEmployeePhoto stores a roster photo and returns its object key
	UploadEmployeePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// GetFileURL resolves a stored key to a publicly fetchable URL
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// DeleteFile removes a stored object
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

// UploadEmployeePhoto validates, downscales and stores an employee photo.
// Output is always JPEG regardless of the uploaded format.
func (s *fileServiceImpl) UploadEmployeePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	resized := downscale(img, maxPhotoDimension)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode photo: %w", err)
	}

	newFilename := fmt.Sprintf("%s-%s.jpg", employeeID, uuid.New().String())
	path := filepath.Join("photos", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, buf, path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return uploadedPath, nil
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// downscale shrinks img so its longest side is at most max pixels,
// preserving aspect ratio. Images already within bounds pass through.
func downscale(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= max && h <= max {
		return img
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
