// internals/features/cms/settings/route/site_setting_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingController "panditku_backend/internals/features/cms/settings/controller"
)

func PublicSettingRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := settingController.NewSiteSettingController(db)
	public.Get("/settings", ctrl.GetSettings)
}

func AdminSettingRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := settingController.NewSiteSettingController(db)

	settings := admin.Group("/settings")
	settings.Get("/", ctrl.GetSettings)
	settings.Put("/", ctrl.UpsertSettings)
}
