// file: internals/features/subscriptions/routes/subscription_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	subscriptionController "careconnect_backend/internals/features/subscriptions/controller"
	authMiddleware "careconnect_backend/internals/middlewares/auth"
)

func SubscriptionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := subscriptionController.NewSubscriptionController(db)

	subs := r.Group("/subscriptions")

	// 🔔 webhook Xendit — tanpa JWT, dilindungi x-callback-token
	subs.Post("/webhook/xendit", ctrl.HandleRecurringWebhook)

	// 🔐 butuh login
	authed := subs.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	authed.Post("/payment-method", ctrl.AddPaymentMethod)
	authed.Post("", ctrl.CreateSubscription)
	authed.Get("/details", ctrl.GetDetails)
	authed.Patch("/update", ctrl.UpdateAmount)
	authed.Delete("/cancel", ctrl.Cancel)
	authed.Get("/history", ctrl.History)
	authed.Get("/donations", ctrl.GetSubscriptionDonations)
}
