package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
)

/*
BlobService is the upload/delete facade the media controllers depend on.

Images are re-encoded to WebP and stored under
"{category}/{timestamp}-{sanitized-filename}" in the media bucket; a
downscaled thumbnail variant is written next to the original. Deletes by
public URL are tolerant of already-missing objects.
*/

type BlobService interface {
	UploadImage(ctx context.Context, category string, fh *multipart.FileHeader) (publicURL, objectKey string, err error)
	UploadThumbnail(ctx context.Context, objectKey string, src []byte) (publicURL string, err error)

	DeleteByPublicURL(ctx context.Context, publicURL string) error
	DeleteManyByPublicURL(ctx context.Context, publicURLs []string) (deleted []string, failed map[string]error)
}

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv() (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv()
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, category string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File missing")
	}
	if fh.Size > maxUploadSize {
		return "", "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "File exceeds the 5MB upload limit")
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	defer f.Close()

	data, err := ConvertToWebP(f, fh.Filename)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, fmt.Sprintf("Not a supported image: %v", err))
	}

	key := ObjectKey(category, webpName(fh.Filename), time.Now())
	if err := b.svc.UploadStream(ctx, key, bytes.NewReader(data), "image/webp"); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to storage failed")
	}
	return b.svc.PublicURL(key), key, nil
}

// UploadThumbnail writes a 400px-wide variant of src beside objectKey
// ("dir/name.webp" → "dir/thumb-name.webp").
func (b *OSSBlobService) UploadThumbnail(ctx context.Context, objectKey string, src []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("decode for thumbnail: %w", err)
	}
	thumb := imaging.Resize(img, 400, 0, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(78)); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}

	key := thumbKey(objectKey)
	if err := b.svc.UploadStream(ctx, key, buf, "image/jpeg"); err != nil {
		return "", err
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Empty URL")
	}
	key, err := b.svc.ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := b.svc.DeleteObject(ctx, key); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Delete object failed: %v", err))
	}
	return nil
}

func (b *OSSBlobService) DeleteManyByPublicURL(ctx context.Context, publicURLs []string) ([]string, map[string]error) {
	deleted := make([]string, 0, len(publicURLs))
	failed := map[string]error{}
	for _, u := range publicURLs {
		if err := b.DeleteByPublicURL(ctx, u); err != nil {
			failed[u] = err
			continue
		}
		deleted = append(deleted, u)
	}
	return deleted, failed
}

// TryGetImageFile fetches the multipart file from the first matching
// field name the frontends use.
func TryGetImageFile(c *fiber.Ctx, names ...string) *multipart.FileHeader {
	if len(names) == 0 {
		names = []string{"file", "image", "photo"}
	}
	for _, n := range names {
		if fh, err := c.FormFile(n); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}

func webpName(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return base + ".webp"
}

func thumbKey(objectKey string) string {
	dir := filepath.Dir(objectKey)
	name := filepath.Base(objectKey)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	if dir == "." {
		return "thumb-" + name
	}
	return dir + "/thumb-" + name
}

// ReadAllLimited reads at most limit+1 bytes so callers can detect
// oversize streams without buffering the world.
func ReadAllLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("stream exceeds %d bytes", limit)
	}
	return data, nil
}
