package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaFileModel is the metadata row for one uploaded image. The binary
// lives in the media bucket under MediaFileObjectKey. Content documents
// reference MediaFileURL as a plain string with no referential
// integrity, so deleting a media file does not touch content that
// links to it.
type MediaFileModel struct {
	MediaFileID uuid.UUID `gorm:"column:media_file_id;type:uuid;default:gen_random_uuid();primaryKey" json:"media_file_id"`

	MediaFileTitle    string `gorm:"column:media_file_title;type:varchar(150);not null" json:"media_file_title"`
	MediaFileFileName string `gorm:"column:media_file_file_name;type:varchar(255);not null" json:"media_file_file_name"`
	MediaFileCategory string `gorm:"column:media_file_category;type:varchar(50);not null;default:'uncategorized';index" json:"media_file_category"`
	MediaFileAltText  string `gorm:"column:media_file_alt_text;type:varchar(255)" json:"media_file_alt_text"`

	MediaFileURL          string `gorm:"column:media_file_url;type:text;not null" json:"media_file_url"`
	MediaFileObjectKey    string `gorm:"column:media_file_object_key;type:text;not null" json:"media_file_object_key"`
	MediaFileThumbnailURL string `gorm:"column:media_file_thumbnail_url;type:text" json:"media_file_thumbnail_url"`

	MediaFileSizeBytes   int64  `gorm:"column:media_file_size_bytes;not null;default:0" json:"media_file_size_bytes"`
	MediaFileContentType string `gorm:"column:media_file_content_type;type:varchar(100)" json:"media_file_content_type"`

	MediaFileCreatedAt time.Time `gorm:"column:media_file_created_at;autoCreateTime" json:"media_file_created_at"`
	MediaFileUpdatedAt time.Time `gorm:"column:media_file_updated_at;autoUpdateTime" json:"media_file_updated_at"`
}

func (MediaFileModel) TableName() string {
	return "media_files"
}
