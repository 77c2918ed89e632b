// internals/features/analytics/controller/analytics_controller.go
package controller

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"panditku_backend/internals/features/analytics/dto"
	"panditku_backend/internals/features/analytics/model"
	helper "panditku_backend/internals/helpers"
)

var validate = validator.New()

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// =============================
// 📝 POST /api/public/analytics/page-view
// =============================
// Recording is fire-and-forget from the visitor's perspective: a failed
// referrer rollup is logged and never fails the request.
func (ctrl *AnalyticsController) RecordPageView(c *fiber.Ctx) error {
	var req dto.RecordPageViewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.PageViewModel{
		PageViewPath:      strings.TrimSpace(req.Path),
		PageViewReferrer:  strings.TrimSpace(req.Referrer),
		PageViewVisitorID: strings.TrimSpace(req.VisitorID),
		PageViewUserAgent: truncate(c.Get("User-Agent"), 500),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record page view")
	}

	if host := referrerHost(req.Referrer); host != "" {
		if err := ctrl.bumpReferrer(host); err != nil {
			log.Printf("[WARNING] analytics: referrer rollup for %s failed: %v", host, err)
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Page view recorded", nil)
}

// =============================
// 📝 POST /api/public/analytics/service-view
// =============================
func (ctrl *AnalyticsController) RecordServiceView(c *fiber.Ctx) error {
	var req dto.RecordServiceViewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.ServiceViewModel{
		ServiceViewServiceName: strings.TrimSpace(req.ServiceName),
		ServiceViewVisitorID:   strings.TrimSpace(req.VisitorID),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record service view")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Service view recorded", nil)
}

// =============================
// 📝 POST /api/public/analytics/consent
// =============================
// One row per visitor; a repeated choice overwrites the previous one.
func (ctrl *AnalyticsController) RecordConsent(c *fiber.Ctx) error {
	var req dto.RecordConsentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.UserCookieConsentModel{
		UserCookieConsentVisitorID: strings.TrimSpace(req.VisitorID),
		UserCookieConsentAccepted:  *req.Accepted,
	}
	err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_cookie_consent_visitor_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"user_cookie_consent_accepted":   row.UserCookieConsentAccepted,
			"user_cookie_consent_updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record consent")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Consent recorded", nil)
}

// =============================
// 📊 GET /api/a/analytics/summary?days=30
// =============================
func (ctrl *AnalyticsController) GetSummary(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}
	since := time.Now().AddDate(0, 0, -days)

	out := dto.AnalyticsSummaryDTO{RangeDays: days}

	if err := ctrl.DB.Model(&model.PageViewModel{}).
		Where("page_view_created_at >= ?", since).
		Count(&out.TotalPageViews).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build analytics summary")
	}

	if err := ctrl.DB.Model(&model.PageViewModel{}).
		Where("page_view_created_at >= ? AND page_view_visitor_id <> ''", since).
		Distinct("page_view_visitor_id").
		Count(&out.UniqueVisitors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build analytics summary")
	}

	if err := ctrl.DB.Model(&model.PageViewModel{}).
		Select("page_view_path AS path, COUNT(*) AS count").
		Where("page_view_created_at >= ?", since).
		Group("page_view_path").
		Order("count DESC").
		Limit(10).
		Scan(&out.TopPages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build analytics summary")
	}

	if err := ctrl.DB.Model(&model.ServiceViewModel{}).
		Select("service_view_service_name AS name, COUNT(*) AS count").
		Where("service_view_created_at >= ?", since).
		Group("service_view_service_name").
		Order("count DESC").
		Limit(10).
		Scan(&out.TopServices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build analytics summary")
	}

	if err := ctrl.DB.Model(&model.ReferrerSourceModel{}).
		Select("referrer_source_host AS name, referrer_source_count AS count").
		Order("referrer_source_count DESC").
		Limit(10).
		Scan(&out.TopReferrers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build analytics summary")
	}

	if err := ctrl.DB.Model(&model.UserCookieConsentModel{}).
		Where("user_cookie_consent_accepted = TRUE").
		Count(&out.ConsentAccepted).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build analytics summary")
	}
	if err := ctrl.DB.Model(&model.UserCookieConsentModel{}).
		Where("user_cookie_consent_accepted = FALSE").
		Count(&out.ConsentDeclined).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build analytics summary")
	}

	return helper.Success(c, "Analytics summary fetched successfully", out)
}

func (ctrl *AnalyticsController) bumpReferrer(host string) error {
	return ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "referrer_source_host"}},
		DoUpdates: clause.Assignments(map[string]any{
			"referrer_source_count":      gorm.Expr("referrer_sources.referrer_source_count + 1"),
			"referrer_source_updated_at": time.Now(),
		}),
	}).Create(&model.ReferrerSourceModel{
		ReferrerSourceHost:  host,
		ReferrerSourceCount: 1,
	}).Error
}

// referrerHost extracts a lowercased host from a referrer URL. Empty or
// unparseable referrers roll up to nothing.
func referrerHost(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
