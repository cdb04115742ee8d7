// file: internals/features/donations/routes/donation_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	donationController "careconnect_backend/internals/features/donations/controller"
	authMiddleware "careconnect_backend/internals/middlewares/auth"
)

func DonationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := donationController.NewDonationController(db)

	donations := r.Group("/donations")

	// 🔔 webhook Xendit — tanpa JWT, dilindungi x-callback-token
	donations.Post("/webhook/xendit", ctrl.HandleXenditWebhook)

	// 🔐 butuh login
	authed := donations.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	authed.Post("", ctrl.CreateDonation)
	authed.Get("", ctrl.GetDonations)
	authed.Get("/:id", ctrl.GetDonationByID)
}
