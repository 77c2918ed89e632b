package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"panditku_backend/internals/features/cms/pages/controller"
)

// PublicPageRoutes: read-only content endpoints consumed by the site.
func PublicPageRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPageContentController(db)
	r.Get("/pages/:slug/content", ctrl.GetPageContent)
}

// AdminPageRoutes: content editing endpoints.
func AdminPageRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPageContentController(db)
	r.Put("/pages/:slug/content", ctrl.SavePageContent)
	r.Patch("/pages/:slug/content", ctrl.PatchPageContent)
}
