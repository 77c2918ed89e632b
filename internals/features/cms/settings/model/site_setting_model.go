package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SiteSettingModel holds the single sitewide settings row. The singleton
// guard column is always TRUE and carries a unique index, so a second
// INSERT fails at the database even under concurrent writers.
type SiteSettingModel struct {
	SiteSettingID uuid.UUID `gorm:"column:site_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"site_setting_id"`

	SiteSettingSingleton bool `gorm:"column:site_setting_singleton;not null;default:true;uniqueIndex" json:"-"`

	SiteSettingSiteName    string         `gorm:"column:site_setting_site_name;type:varchar(100);not null;default:''" json:"site_setting_site_name"`
	SiteSettingTagline     string         `gorm:"column:site_setting_tagline;type:varchar(200)" json:"site_setting_tagline"`
	SiteSettingLogoURL     string         `gorm:"column:site_setting_logo_url;type:text" json:"site_setting_logo_url"`
	SiteSettingContactJSON datatypes.JSON `gorm:"column:site_setting_contact_json;type:jsonb" json:"site_setting_contact_json"`
	SiteSettingSocialJSON  datatypes.JSON `gorm:"column:site_setting_social_json;type:jsonb" json:"site_setting_social_json"`
	SiteSettingFooterJSON  datatypes.JSON `gorm:"column:site_setting_footer_json;type:jsonb" json:"site_setting_footer_json"`
	SiteSettingHeaderJSON  datatypes.JSON `gorm:"column:site_setting_header_json;type:jsonb" json:"site_setting_header_json"`

	SiteSettingCreatedAt time.Time `gorm:"column:site_setting_created_at;autoCreateTime" json:"site_setting_created_at"`
	SiteSettingUpdatedAt time.Time `gorm:"column:site_setting_updated_at;autoUpdateTime" json:"site_setting_updated_at"`
}

func (SiteSettingModel) TableName() string {
	return "site_settings"
}
