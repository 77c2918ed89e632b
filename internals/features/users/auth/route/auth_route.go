package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"panditku_backend/internals/constants"
	"panditku_backend/internals/features/users/auth/controller"
	"panditku_backend/internals/middlewares"
	authMiddleware "panditku_backend/internals/middlewares/auth"
)

// AuthRoutes registers /auth endpoints.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/refresh", ctrl.Refresh)

	// everything below needs a valid session
	authed := auth.Group("", authMiddleware.AuthMiddleware(db))
	authed.Post("/logout", ctrl.Logout)
	authed.Get("/me", ctrl.Me)
	authed.Post("/register",
		authMiddleware.OnlyRoles(constants.RoleErrorOwner("user management"), constants.RoleOwner),
		ctrl.Register,
	)
}
