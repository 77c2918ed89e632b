// internals/features/analytics/route/analytics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "panditku_backend/internals/features/analytics/controller"
	"panditku_backend/internals/middlewares"
)

func PublicAnalyticsRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := analyticsController.NewAnalyticsController(db)

	analytics := public.Group("/analytics", middlewares.AnalyticsRateLimiter())
	analytics.Post("/page-view", ctrl.RecordPageView)
	analytics.Post("/service-view", ctrl.RecordServiceView)
	analytics.Post("/consent", ctrl.RecordConsent)
}

func AdminAnalyticsRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := analyticsController.NewAnalyticsController(db)
	admin.Get("/analytics/summary", ctrl.GetSummary)
}
