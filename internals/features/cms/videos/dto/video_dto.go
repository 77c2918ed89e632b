package dto

import (
	"time"

	"github.com/google/uuid"

	"panditku_backend/internals/features/cms/videos/model"
)

type CreateVideoRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=150"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Category    string `json:"category" validate:"required,oneof=puja bhajan katha ceremony"`
	URL         string `json:"url" validate:"required"`
	SortOrder   int    `json:"sort_order"`
	IsVisible   *bool  `json:"is_visible"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Category    *string `json:"category" validate:"omitempty,oneof=puja bhajan katha ceremony"`
	URL         *string `json:"url"`
	SortOrder   *int    `json:"sort_order"`
	IsVisible   *bool   `json:"is_visible"`
}

type VideoDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	YoutubeID    string    `json:"youtube_id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	SortOrder    int       `json:"sort_order"`
	IsVisible    bool      `json:"is_visible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToVideoDTO(m model.VideoModel) VideoDTO {
	return VideoDTO{
		ID:           m.VideoID,
		Title:        m.VideoTitle,
		Description:  m.VideoDescription,
		Category:     m.VideoCategory,
		YoutubeID:    m.VideoYoutubeID,
		URL:          m.VideoURL,
		ThumbnailURL: m.VideoThumbnailURL,
		SortOrder:    m.VideoSortOrder,
		IsVisible:    m.VideoIsVisible,
		CreatedAt:    m.VideoCreatedAt,
		UpdatedAt:    m.VideoUpdatedAt,
	}
}

func ToVideoDTOs(models []model.VideoModel) []VideoDTO {
	out := make([]VideoDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToVideoDTO(m))
	}
	return out
}
