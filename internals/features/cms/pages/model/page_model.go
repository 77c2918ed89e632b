package model

import (
	"time"

	"github.com/google/uuid"
)

type PageModel struct {
	PageID    uuid.UUID `gorm:"column:page_id;type:uuid;default:gen_random_uuid();primaryKey" json:"page_id"`
	PageSlug  string    `gorm:"column:page_slug;type:varchar(50);not null;unique" json:"page_slug"`
	PageTitle string    `gorm:"column:page_title;type:varchar(120);not null" json:"page_title"`

	PageCreatedAt time.Time `gorm:"column:page_created_at;autoCreateTime" json:"page_created_at"`
	PageUpdatedAt time.Time `gorm:"column:page_updated_at;autoUpdateTime" json:"page_updated_at"`
}

func (PageModel) TableName() string {
	return "pages"
}
