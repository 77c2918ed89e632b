// internals/features/cms/media/controller/media_controller.go
package controller

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"panditku_backend/internals/features/cms/media/dto"
	"panditku_backend/internals/features/cms/media/model"
	helper "panditku_backend/internals/helpers"
	oss "panditku_backend/internals/helpers/oss"
)

var validate = validator.New()

type MediaController struct {
	DB *gorm.DB

	blobOnce sync.Once
	blob     oss.BlobService
	blobErr  error
}

func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{DB: db}
}

// NewMediaControllerWithBlob wires an explicit storage client instead of
// the env-built one.
func NewMediaControllerWithBlob(db *gorm.DB, blob oss.BlobService) *MediaController {
	ctrl := &MediaController{DB: db, blob: blob}
	ctrl.blobOnce.Do(func() {})
	return ctrl
}

// getBlob builds the storage client lazily so list/update/delete keep
// working even when the OSS env vars are absent (local dev).
func (ctrl *MediaController) getBlob() (oss.BlobService, error) {
	ctrl.blobOnce.Do(func() {
		svc, err := oss.NewOSSBlobServiceFromEnv()
		if err != nil {
			ctrl.blobErr = err
			return
		}
		ctrl.blob = svc
	})
	return ctrl.blob, ctrl.blobErr
}

// =============================
// 📚 GET /api/a/media
// =============================
// Filters: ?search= substring over title & file name, ?category= exact.
func (ctrl *MediaController) ListMedia(c *fiber.Ctx) error {
	p := helper.ParsePaginationWith(c, "media_file_created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.MediaFileModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("media_file_title ILIKE ? OR media_file_file_name ILIKE ?", like, like)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("media_file_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count media files")
	}

	var rows []model.MediaFileModel
	if err := q.
		Order(fmt.Sprintf("%s %s", sortColumn(p.SortBy), p.SortOrder)).
		Limit(p.PerPage).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch media files")
	}

	return helper.Success(c, "Media files fetched successfully", fiber.Map{
		"items":      dto.ToMediaFileDTOs(rows),
		"pagination": helper.PaginationMeta(p, total),
	})
}

func sortColumn(requested string) string {
	switch requested {
	case "media_file_title", "media_file_category", "media_file_size_bytes", "media_file_created_at":
		return requested
	default:
		return "media_file_created_at"
	}
}

// =============================
// 📤 POST /api/a/media (multipart, field "files" repeated)
// =============================
// Files are processed sequentially. A failure on one file is reported in
// its result entry and the batch continues with the next file.
func (ctrl *MediaController) UploadMedia(c *fiber.Ctx) error {
	blob, err := ctrl.getBlob()
	if err != nil {
		log.Printf("[ERROR] media upload: storage unavailable: %v", err)
		return helper.Error(c, fiber.StatusServiceUnavailable, "Storage is not configured")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		if fh := oss.TryGetImageFile(c); fh != nil {
			files = append(files, fh)
		}
	}
	if len(files) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No files uploaded")
	}

	category := strings.TrimSpace(c.FormValue("category"))
	if category == "" {
		category = "uncategorized"
	}
	altText := strings.TrimSpace(c.FormValue("alt_text"))
	title := strings.TrimSpace(c.FormValue("title"))

	results, uploaded := uploadBatch(c.Context(), blob, files, category, title, altText,
		func(row *model.MediaFileModel) error {
			return ctrl.DB.Create(row).Error
		})

	status := fiber.StatusCreated
	if uploaded == 0 {
		status = fiber.StatusBadRequest
	}
	return helper.SuccessWithCode(c, status, fmt.Sprintf("%d of %d files uploaded", uploaded, len(files)), fiber.Map{
		"results": results,
	})
}

// uploadBatch runs the sequential bulk upload: every file gets its own
// result entry and a failure on one never aborts the rest. save persists
// the metadata row; on a save failure the stored binary is cleaned up
// best-effort.
func uploadBatch(
	ctx context.Context,
	blob oss.BlobService,
	files []*multipart.FileHeader,
	category, title, altText string,
	save func(*model.MediaFileModel) error,
) ([]dto.UploadResultDTO, int) {
	results := make([]dto.UploadResultDTO, 0, len(files))
	uploaded := 0

	for _, fh := range files {
		res := dto.UploadResultDTO{FileName: fh.Filename, Status: "uploaded"}

		publicURL, objectKey, upErr := blob.UploadImage(ctx, category, fh)
		if upErr != nil {
			res.Status = "failed"
			res.Reason = reasonOf(upErr)
			log.Printf("[WARNING] media upload: %s failed: %v", fh.Filename, upErr)
			results = append(results, res)
			continue
		}

		// Thumbnail is best-effort; a missing thumb never fails the upload.
		thumbnailURL := ""
		if raw, rerr := readHeader(fh); rerr == nil {
			if tURL, terr := blob.UploadThumbnail(ctx, objectKey, raw); terr == nil {
				thumbnailURL = tURL
			} else {
				log.Printf("[WARNING] media upload: thumbnail for %s failed: %v", fh.Filename, terr)
			}
		}

		rowTitle := title
		if rowTitle == "" {
			rowTitle = titleFromFilename(fh.Filename)
		}

		row := model.MediaFileModel{
			MediaFileTitle:        rowTitle,
			MediaFileFileName:     fh.Filename,
			MediaFileCategory:     category,
			MediaFileAltText:      altText,
			MediaFileURL:          publicURL,
			MediaFileObjectKey:    objectKey,
			MediaFileThumbnailURL: thumbnailURL,
			MediaFileSizeBytes:    fh.Size,
			MediaFileContentType:  "image/webp",
		}
		if saveErr := save(&row); saveErr != nil {
			res.Status = "failed"
			res.Reason = "Failed to save media metadata"
			log.Printf("[ERROR] media upload: insert for %s failed: %v", fh.Filename, saveErr)
			// Orphaned binary cleanup, best-effort.
			if delErr := blob.DeleteByPublicURL(ctx, publicURL); delErr != nil {
				log.Printf("[WARNING] media upload: cleanup of %s failed: %v", objectKey, delErr)
			}
			results = append(results, res)
			continue
		}

		d := dto.ToMediaFileDTO(row)
		res.Media = &d
		results = append(results, res)
		uploaded++
	}
	return results, uploaded
}

// =============================
// ✏️ PUT /api/a/media/:id
// =============================
func (ctrl *MediaController) UpdateMedia(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid media ID")
	}

	var req dto.UpdateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.MediaFileModel
	if err := ctrl.DB.First(&row, "media_file_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Media file not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch media file")
	}

	if req.Title != nil {
		row.MediaFileTitle = strings.TrimSpace(*req.Title)
	}
	if req.Category != nil {
		row.MediaFileCategory = strings.TrimSpace(*req.Category)
	}
	if req.AltText != nil {
		row.MediaFileAltText = strings.TrimSpace(*req.AltText)
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update media file")
	}
	return helper.Success(c, "Media file updated successfully", dto.ToMediaFileDTO(row))
}

// =============================
// 🗑️ DELETE /api/a/media/:id
// =============================
// The metadata row is removed first; the binary and its thumbnail are
// then deleted best-effort. A storage failure is logged, never returned.
func (ctrl *MediaController) DeleteMedia(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid media ID")
	}

	var row model.MediaFileModel
	if err := ctrl.DB.First(&row, "media_file_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Media file not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch media file")
	}

	if err := ctrl.DB.Delete(&model.MediaFileModel{}, "media_file_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete media file")
	}

	if blob, berr := ctrl.getBlob(); berr == nil {
		urls := []string{row.MediaFileURL}
		if row.MediaFileThumbnailURL != "" {
			urls = append(urls, row.MediaFileThumbnailURL)
		}
		if _, failed := blob.DeleteManyByPublicURL(c.Context(), urls); len(failed) > 0 {
			for u, ferr := range failed {
				log.Printf("[WARNING] media delete: binary removal failed for %s: %v", u, ferr)
			}
		}
	} else {
		log.Printf("[WARNING] media delete: storage unavailable, binary %s left behind: %v", row.MediaFileObjectKey, berr)
	}

	return helper.Success(c, "Media file deleted successfully", fiber.Map{"id": id})
}

func readHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return oss.ReadAllLimited(f, oss.MaxUploadSize())
}

func reasonOf(err error) string {
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Message
	}
	return err.Error()
}

func titleFromFilename(name string) string {
	base := name
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Untitled"
	}
	return base
}
