// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"panditku_backend/internals/constants"
	analyticsRoute "panditku_backend/internals/features/analytics/route"
	blogRoute "panditku_backend/internals/features/cms/blog/route"
	mediaRoute "panditku_backend/internals/features/cms/media/route"
	menuRoute "panditku_backend/internals/features/cms/menus/route"
	pageRoute "panditku_backend/internals/features/cms/pages/route"
	settingRoute "panditku_backend/internals/features/cms/settings/route"
	videoRoute "panditku_backend/internals/features/cms/videos/route"
	donationRoute "panditku_backend/internals/features/donations/route"
	authRoute "panditku_backend/internals/features/users/auth/route"
	authMiddleware "panditku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every route group:
//
//	/auth                     session endpoints
//	/api/public               unauthenticated site content
//	/api/donations/notification payment gateway webhook
//	/api/a                    admin CMS (auth + role gate)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
	donationRoute.WebhookDonationRoutes(app, db)

	public := app.Group("/api/public")
	pageRoute.PublicPageRoutes(public, db)
	videoRoute.PublicVideoRoutes(public, db)
	blogRoute.PublicBlogRoutes(public, db)
	menuRoute.PublicMenuRoutes(public, db)
	settingRoute.PublicSettingRoutes(public, db)
	analyticsRoute.PublicAnalyticsRoutes(public, db)
	donationRoute.PublicDonationRoutes(public, db)

	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("CMS administration"), constants.AdminAndAbove...),
	)
	pageRoute.AdminPageRoutes(admin, db)
	mediaRoute.AdminMediaRoutes(admin, db)
	videoRoute.AdminVideoRoutes(admin, db)
	blogRoute.AdminBlogRoutes(admin, db)
	menuRoute.AdminMenuRoutes(admin, db)
	settingRoute.AdminSettingRoutes(admin, db)
	analyticsRoute.AdminAnalyticsRoutes(admin, db)
	donationRoute.AdminDonationRoutes(admin, db)
}
