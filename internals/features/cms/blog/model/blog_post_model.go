package model

import (
	"time"

	"github.com/google/uuid"
)

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusArchived  BlogStatus = "archived"
)

func (s BlogStatus) Valid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished, BlogStatusArchived:
		return true
	}
	return false
}

// MaxBlogContentLength bounds the sanitized HTML body.
const MaxBlogContentLength = 50_000

type BlogPostModel struct {
	BlogPostID uuid.UUID `gorm:"column:blog_post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"blog_post_id"`

	BlogPostTitle   string `gorm:"column:blog_post_title;type:varchar(200);not null" json:"blog_post_title"`
	BlogPostSlug    string `gorm:"column:blog_post_slug;type:varchar(220);not null;uniqueIndex" json:"blog_post_slug"`
	BlogPostExcerpt string `gorm:"column:blog_post_excerpt;type:varchar(500)" json:"blog_post_excerpt"`
	// Sanitized HTML. Raw input is cleaned before it ever reaches this column.
	BlogPostContent string `gorm:"column:blog_post_content;type:text;not null" json:"blog_post_content"`

	BlogPostCoverImageURL string `gorm:"column:blog_post_cover_image_url;type:text" json:"blog_post_cover_image_url"`

	BlogPostCategoryID *uuid.UUID         `gorm:"column:blog_post_category_id;type:uuid;index" json:"blog_post_category_id"`
	BlogPostCategory   *BlogCategoryModel `gorm:"foreignKey:BlogPostCategoryID;references:BlogCategoryID" json:"blog_post_category,omitempty"`

	BlogPostStatus      string     `gorm:"column:blog_post_status;type:varchar(20);not null;default:'draft';index" json:"blog_post_status"`
	BlogPostPublishedAt *time.Time `gorm:"column:blog_post_published_at" json:"blog_post_published_at"`

	BlogPostCreatedAt time.Time `gorm:"column:blog_post_created_at;autoCreateTime" json:"blog_post_created_at"`
	BlogPostUpdatedAt time.Time `gorm:"column:blog_post_updated_at;autoUpdateTime" json:"blog_post_updated_at"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}
