package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoCategory is a closed set. The frontends group the gallery tabs by
// these values, so anything else is rejected at validation time.
type VideoCategory string

const (
	VideoCategoryPuja     VideoCategory = "puja"
	VideoCategoryBhajan   VideoCategory = "bhajan"
	VideoCategoryKatha    VideoCategory = "katha"
	VideoCategoryCeremony VideoCategory = "ceremony"
)

func (v VideoCategory) Valid() bool {
	switch v {
	case VideoCategoryPuja, VideoCategoryBhajan, VideoCategoryKatha, VideoCategoryCeremony:
		return true
	}
	return false
}

type VideoModel struct {
	VideoID uuid.UUID `gorm:"column:video_id;type:uuid;default:gen_random_uuid();primaryKey" json:"video_id"`

	VideoTitle       string `gorm:"column:video_title;type:varchar(150);not null" json:"video_title"`
	VideoDescription string `gorm:"column:video_description;type:text" json:"video_description"`
	VideoCategory    string `gorm:"column:video_category;type:varchar(20);not null;index" json:"video_category"`

	VideoYoutubeID    string `gorm:"column:video_youtube_id;type:varchar(20);not null" json:"video_youtube_id"`
	VideoURL          string `gorm:"column:video_url;type:text;not null" json:"video_url"`
	VideoThumbnailURL string `gorm:"column:video_thumbnail_url;type:text" json:"video_thumbnail_url"`

	VideoSortOrder int  `gorm:"column:video_sort_order;not null;default:0" json:"video_sort_order"`
	VideoIsVisible bool `gorm:"column:video_is_visible;not null;default:true" json:"video_is_visible"`

	VideoCreatedAt time.Time `gorm:"column:video_created_at;autoCreateTime" json:"video_created_at"`
	VideoUpdatedAt time.Time `gorm:"column:video_updated_at;autoUpdateTime" json:"video_updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}
