// internals/features/donations/route/donation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "panditku_backend/internals/features/donations/controller"
)

func PublicDonationRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)
	public.Post("/donations", ctrl.CreateDonation)
}

// WebhookDonationRoutes is mounted on the app root; the payment gateway
// cannot send a bearer token, so the auth middleware skips this path.
func WebhookDonationRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)
	app.Post("/api/donations/notification", ctrl.HandleNotification)
}

func AdminDonationRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)
	admin.Get("/donations", ctrl.ListDonations)
}
