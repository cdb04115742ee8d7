// file: internals/features/users/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	userController "careconnect_backend/internals/features/users/controller"
	rateLimiter "careconnect_backend/internals/middlewares"
	authMiddleware "careconnect_backend/internals/middlewares/auth"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users")

	// 🔓 public
	users.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
	users.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)

	// 🔐 butuh login
	authed := users.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	authed.Get("/me", ctrl.Me)
	authed.Get("", authMiddleware.IsAdmin(), ctrl.GetAll) // GET /api/users — admin only
}
