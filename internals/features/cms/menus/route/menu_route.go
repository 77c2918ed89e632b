// internals/features/cms/menus/route/menu_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	menuController "panditku_backend/internals/features/cms/menus/controller"
)

func PublicMenuRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := menuController.NewMenuController(db)
	public.Get("/menus/:key", ctrl.GetPublicMenu)
}

func AdminMenuRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := menuController.NewMenuController(db)

	menus := admin.Group("/menus")
	menus.Get("/:key", ctrl.GetMenu)
	menus.Put("/:key/items", ctrl.ReplaceMenuItems)
}
