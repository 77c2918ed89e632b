package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PageSectionModel holds one section of one page's content document as a
// JSONB blob. (page_id, section_key) is unique so saves are upserts.
type PageSectionModel struct {
	PageSectionID     uuid.UUID `gorm:"column:page_section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"page_section_id"`
	PageSectionPageID uuid.UUID `gorm:"column:page_section_page_id;type:uuid;not null;uniqueIndex:uq_page_section" json:"page_section_page_id"`

	PageSectionKey  string `gorm:"column:page_section_key;type:varchar(50);not null;uniqueIndex:uq_page_section" json:"page_section_key"`
	PageSectionType string `gorm:"column:page_section_type;type:varchar(30);not null" json:"page_section_type"`

	PageSectionContent datatypes.JSON `gorm:"column:page_section_content;type:jsonb;not null" json:"page_section_content"`

	PageSectionCreatedAt time.Time `gorm:"column:page_section_created_at;autoCreateTime" json:"page_section_created_at"`
	PageSectionUpdatedAt time.Time `gorm:"column:page_section_updated_at;autoUpdateTime" json:"page_section_updated_at"`
}

func (PageSectionModel) TableName() string {
	return "page_sections"
}
