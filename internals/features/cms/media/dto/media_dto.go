package dto

import (
	"time"

	"github.com/google/uuid"

	"panditku_backend/internals/features/cms/media/model"
)

// =============================
// 📦 Request DTO
// =============================

type UpdateMediaRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=150"`
	Category *string `json:"category" validate:"omitempty,min=1,max=50"`
	AltText  *string `json:"alt_text" validate:"omitempty,max=255"`
}

// =============================
// 📦 Response DTO
// =============================

type MediaFileDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	FileName     string    `json:"file_name"`
	Category     string    `json:"category"`
	AltText      string    `json:"alt_text"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	SizeBytes    int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UploadResultDTO reports the outcome for a single file in a bulk upload.
// A failed file never aborts the batch.
type UploadResultDTO struct {
	FileName string        `json:"file_name"`
	Status   string        `json:"status"` // "uploaded" | "failed"
	Reason   string        `json:"reason,omitempty"`
	Media    *MediaFileDTO `json:"media,omitempty"`
}

func ToMediaFileDTO(m model.MediaFileModel) MediaFileDTO {
	return MediaFileDTO{
		ID:           m.MediaFileID,
		Title:        m.MediaFileTitle,
		FileName:     m.MediaFileFileName,
		Category:     m.MediaFileCategory,
		AltText:      m.MediaFileAltText,
		URL:          m.MediaFileURL,
		ThumbnailURL: m.MediaFileThumbnailURL,
		SizeBytes:    m.MediaFileSizeBytes,
		ContentType:  m.MediaFileContentType,
		CreatedAt:    m.MediaFileCreatedAt,
		UpdatedAt:    m.MediaFileUpdatedAt,
	}
}

func ToMediaFileDTOs(models []model.MediaFileModel) []MediaFileDTO {
	out := make([]MediaFileDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToMediaFileDTO(m))
	}
	return out
}
