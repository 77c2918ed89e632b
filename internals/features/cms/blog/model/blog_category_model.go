package model

import (
	"time"

	"github.com/google/uuid"
)

type BlogCategoryModel struct {
	BlogCategoryID uuid.UUID `gorm:"column:blog_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"blog_category_id"`

	BlogCategoryName string `gorm:"column:blog_category_name;type:varchar(100);not null" json:"blog_category_name"`
	BlogCategorySlug string `gorm:"column:blog_category_slug;type:varchar(120);not null;uniqueIndex" json:"blog_category_slug"`

	BlogCategoryCreatedAt time.Time `gorm:"column:blog_category_created_at;autoCreateTime" json:"blog_category_created_at"`
	BlogCategoryUpdatedAt time.Time `gorm:"column:blog_category_updated_at;autoUpdateTime" json:"blog_category_updated_at"`
}

func (BlogCategoryModel) TableName() string {
	return "blog_categories"
}
