package dto

import (
	"time"

	"github.com/google/uuid"

	"panditku_backend/internals/features/cms/blog/model"
)

// =============================
// 📦 Request DTO
// =============================

type CreateBlogPostRequest struct {
	Title         string     `json:"title" validate:"required,min=1,max=200"`
	Slug          string     `json:"slug" validate:"omitempty,max=220"`
	Excerpt       string     `json:"excerpt" validate:"omitempty,max=500"`
	Content       string     `json:"content" validate:"required"`
	CoverImageURL string     `json:"cover_image_url" validate:"omitempty,url"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Status        string     `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type UpdateBlogPostRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Slug          *string    `json:"slug" validate:"omitempty,max=220"`
	Excerpt       *string    `json:"excerpt" validate:"omitempty,max=500"`
	Content       *string    `json:"content"`
	CoverImageURL *string    `json:"cover_image_url" validate:"omitempty,url"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Status        *string    `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type UpsertBlogCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=120"`
}

// =============================
// 📦 Response DTO
// =============================

type BlogCategoryDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type BlogPostDTO struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Excerpt       string           `json:"excerpt"`
	Content       string           `json:"content,omitempty"`
	CoverImageURL string           `json:"cover_image_url"`
	Category      *BlogCategoryDTO `json:"category,omitempty"`
	Status        string           `json:"status"`
	PublishedAt   *time.Time       `json:"published_at"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func ToBlogCategoryDTO(m model.BlogCategoryModel) BlogCategoryDTO {
	return BlogCategoryDTO{ID: m.BlogCategoryID, Name: m.BlogCategoryName, Slug: m.BlogCategorySlug}
}

// ToBlogPostDTO maps a row; withContent=false keeps list payloads small.
func ToBlogPostDTO(m model.BlogPostModel, withContent bool) BlogPostDTO {
	d := BlogPostDTO{
		ID:            m.BlogPostID,
		Title:         m.BlogPostTitle,
		Slug:          m.BlogPostSlug,
		Excerpt:       m.BlogPostExcerpt,
		CoverImageURL: m.BlogPostCoverImageURL,
		Status:        m.BlogPostStatus,
		PublishedAt:   m.BlogPostPublishedAt,
		CreatedAt:     m.BlogPostCreatedAt,
		UpdatedAt:     m.BlogPostUpdatedAt,
	}
	if withContent {
		d.Content = m.BlogPostContent
	}
	if m.BlogPostCategory != nil {
		cat := ToBlogCategoryDTO(*m.BlogPostCategory)
		d.Category = &cat
	}
	return d
}

func ToBlogPostDTOs(models []model.BlogPostModel, withContent bool) []BlogPostDTO {
	out := make([]BlogPostDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToBlogPostDTO(m, withContent))
	}
	return out
}
