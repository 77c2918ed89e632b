// internals/features/cms/videos/route/video_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videoController "panditku_backend/internals/features/cms/videos/controller"
)

func PublicVideoRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := videoController.NewVideoController(db)
	public.Get("/videos", ctrl.ListVideos(true))
}

func AdminVideoRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := videoController.NewVideoController(db)

	videos := admin.Group("/videos")
	videos.Get("/", ctrl.ListVideos(false))
	videos.Post("/", ctrl.CreateVideo)
	videos.Put("/:id", ctrl.UpdateVideo)
	videos.Delete("/:id", ctrl.DeleteVideo)
}
