// internals/features/cms/media/route/media_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mediaController "panditku_backend/internals/features/cms/media/controller"
	"panditku_backend/internals/middlewares"
)

// AdminMediaRoutes mounts the media library CRUD under the admin group.
func AdminMediaRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := mediaController.NewMediaController(db)

	media := admin.Group("/media")
	media.Get("/", ctrl.ListMedia)
	media.Post("/", middlewares.UploadRateLimiter(), ctrl.UploadMedia)
	media.Put("/:id", ctrl.UpdateMedia)
	media.Delete("/:id", ctrl.DeleteMedia)
}
