package model

import (
	"time"

	"github.com/google/uuid"
)

// PageViewModel is one recorded visit to a public page.
type PageViewModel struct {
	PageViewID uuid.UUID `gorm:"column:page_view_id;type:uuid;default:gen_random_uuid();primaryKey" json:"page_view_id"`

	PageViewPath      string `gorm:"column:page_view_path;type:varchar(500);not null;index" json:"page_view_path"`
	PageViewReferrer  string `gorm:"column:page_view_referrer;type:varchar(500)" json:"page_view_referrer"`
	PageViewVisitorID string `gorm:"column:page_view_visitor_id;type:varchar(64);index" json:"page_view_visitor_id"`
	PageViewUserAgent string `gorm:"column:page_view_user_agent;type:varchar(500)" json:"page_view_user_agent"`

	PageViewCreatedAt time.Time `gorm:"column:page_view_created_at;autoCreateTime;index" json:"page_view_created_at"`
}

func (PageViewModel) TableName() string {
	return "page_views"
}

// ServiceViewModel counts interest in one named service offering.
type ServiceViewModel struct {
	ServiceViewID uuid.UUID `gorm:"column:service_view_id;type:uuid;default:gen_random_uuid();primaryKey" json:"service_view_id"`

	ServiceViewServiceName string `gorm:"column:service_view_service_name;type:varchar(150);not null;index" json:"service_view_service_name"`
	ServiceViewVisitorID   string `gorm:"column:service_view_visitor_id;type:varchar(64)" json:"service_view_visitor_id"`

	ServiceViewCreatedAt time.Time `gorm:"column:service_view_created_at;autoCreateTime;index" json:"service_view_created_at"`
}

func (ServiceViewModel) TableName() string {
	return "service_views"
}

// ReferrerSourceModel aggregates inbound traffic per referrer host.
type ReferrerSourceModel struct {
	ReferrerSourceID uuid.UUID `gorm:"column:referrer_source_id;type:uuid;default:gen_random_uuid();primaryKey" json:"referrer_source_id"`

	ReferrerSourceHost  string `gorm:"column:referrer_source_host;type:varchar(255);not null;uniqueIndex" json:"referrer_source_host"`
	ReferrerSourceCount int64  `gorm:"column:referrer_source_count;not null;default:0" json:"referrer_source_count"`

	ReferrerSourceCreatedAt time.Time `gorm:"column:referrer_source_created_at;autoCreateTime" json:"referrer_source_created_at"`
	ReferrerSourceUpdatedAt time.Time `gorm:"column:referrer_source_updated_at;autoUpdateTime" json:"referrer_source_updated_at"`
}

func (ReferrerSourceModel) TableName() string {
	return "referrer_sources"
}

// UserCookieConsentModel records a visitor's consent choice.
type UserCookieConsentModel struct {
	UserCookieConsentID uuid.UUID `gorm:"column:user_cookie_consent_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_cookie_consent_id"`

	UserCookieConsentVisitorID string `gorm:"column:user_cookie_consent_visitor_id;type:varchar(64);not null;uniqueIndex" json:"user_cookie_consent_visitor_id"`
	UserCookieConsentAccepted  bool   `gorm:"column:user_cookie_consent_accepted;not null" json:"user_cookie_consent_accepted"`

	UserCookieConsentCreatedAt time.Time `gorm:"column:user_cookie_consent_created_at;autoCreateTime" json:"user_cookie_consent_created_at"`
	UserCookieConsentUpdatedAt time.Time `gorm:"column:user_cookie_consent_updated_at;autoUpdateTime" json:"user_cookie_consent_updated_at"`
}

func (UserCookieConsentModel) TableName() string {
	return "user_cookie_consents"
}
