package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"panditku_backend/internals/features/cms/settings/model"
)

type UpsertSiteSettingsRequest struct {
	SiteName *string         `json:"site_name" validate:"omitempty,max=100"`
	Tagline  *string         `json:"tagline" validate:"omitempty,max=200"`
	LogoURL  *string         `json:"logo_url" validate:"omitempty,max=2048"`
	Contact  json.RawMessage `json:"contact"`
	Social   json.RawMessage `json:"social"`
	Header   json.RawMessage `json:"header"`
	Footer   json.RawMessage `json:"footer"`
}

type SiteSettingsDTO struct {
	SiteName  string          `json:"site_name"`
	Tagline   string          `json:"tagline"`
	LogoURL   string          `json:"logo_url"`
	Contact   json.RawMessage `json:"contact"`
	Social    json.RawMessage `json:"social"`
	Header    json.RawMessage `json:"header"`
	Footer    json.RawMessage `json:"footer"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToSiteSettingsDTO(m model.SiteSettingModel) SiteSettingsDTO {
	return SiteSettingsDTO{
		SiteName:  m.SiteSettingSiteName,
		Tagline:   m.SiteSettingTagline,
		LogoURL:   m.SiteSettingLogoURL,
		Contact:   rawOrEmpty(m.SiteSettingContactJSON),
		Social:    rawOrEmpty(m.SiteSettingSocialJSON),
		Header:    rawOrEmpty(m.SiteSettingHeaderJSON),
		Footer:    rawOrEmpty(m.SiteSettingFooterJSON),
		UpdatedAt: m.SiteSettingUpdatedAt,
	}
}

func rawOrEmpty(j datatypes.JSON) json.RawMessage {
	if len(j) == 0 {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(j)
}
