// file: internals/features/activities/routes/activity_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	activityController "careconnect_backend/internals/features/activities/controller"
	authMiddleware "careconnect_backend/internals/middlewares/auth"
)

func ActivityRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityController(db)

	activities := r.Group("/activities")

	// 🔓 public read
	activities.Get("", ctrl.GetActivities)       // GET /api/activities?search=&category=&location=
	activities.Get("/:id", ctrl.GetActivityByID) // GET /api/activities/:id

	authed := activities.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// 🔐 user login
	authed.Post("/:id/volunteer", ctrl.RegisterVolunteer)
	authed.Delete("/:id/volunteer/:volunteerId", ctrl.UnregisterVolunteer)

	// 🔐 admin only
	authed.Post("", authMiddleware.IsAdmin(), ctrl.CreateActivity)
	authed.Put("/:id", authMiddleware.IsAdmin(), ctrl.UpdateActivity)
	authed.Delete("/:id", authMiddleware.IsAdmin(), ctrl.DeleteActivity)
	authed.Post("/:id/donation", authMiddleware.IsAdmin(), ctrl.AddDonation)
}
