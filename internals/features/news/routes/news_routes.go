// file: internals/features/news/routes/news_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	newsController "careconnect_backend/internals/features/news/controller"
	authMiddleware "careconnect_backend/internals/middlewares/auth"
)

func NewsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := newsController.NewNewsController(db)

	news := r.Group("/news")

	// 🔓 public read
	news.Get("", ctrl.GetNews)          // GET /api/news?activityId=
	news.Get("/latest", ctrl.GetLatest) // GET /api/news/latest?limit=
	news.Get("/:id", ctrl.GetNewsByID)  // GET /api/news/:id

	// 🔐 admin only
	admin := news.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.IsAdmin(),
	)
	admin.Post("", ctrl.CreateNews)
	admin.Put("/:id", ctrl.UpdateNews)
	admin.Delete("/:id", ctrl.DeleteNews)
}
