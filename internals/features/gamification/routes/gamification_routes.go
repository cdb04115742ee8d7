// file: internals/features/gamification/routes/gamification_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gamificationController "careconnect_backend/internals/features/gamification/controller"
)

/*
Gamification routes — semuanya read-only.
Mutasi poin/achievement hanya terjadi lewat engine
(dipicu donasi settle & registrasi relawan), bukan endpoint.
*/
func GamificationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gamificationController.NewGamificationController(db)

	g := r.Group("/gamification")
	g.Get("/profile/:userId", ctrl.GetProfile)               // GET /api/gamification/profile/:userId
	g.Get("/leaderboard", ctrl.GetLeaderboard)               // GET /api/gamification/leaderboard?type=&limit=
	g.Get("/achievements", ctrl.GetAllAchievements)          // GET /api/gamification/achievements
	g.Get("/achievements/:userId", ctrl.GetUserAchievements) // GET /api/gamification/achievements/:userId
}
