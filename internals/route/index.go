// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoutes "careconnect_backend/internals/features/activities/routes"
	donationRoutes "careconnect_backend/internals/features/donations/routes"
	expenseRoutes "careconnect_backend/internals/features/expenses/routes"
	gamificationRoutes "careconnect_backend/internals/features/gamification/routes"
	newsRoutes "careconnect_backend/internals/features/news/routes"
	subscriptionRoutes "careconnect_backend/internals/features/subscriptions/routes"
	userRoutes "careconnect_backend/internals/features/users/routes"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Mounting User routes...")
	userRoutes.UserRoutes(api, db)

	log.Println("[INFO] Mounting Activity routes...")
	activityRoutes.ActivityRoutes(api, db)

	log.Println("[INFO] Mounting Donation routes...")
	donationRoutes.DonationRoutes(api, db)

	log.Println("[INFO] Mounting Subscription routes...")
	subscriptionRoutes.SubscriptionRoutes(api, db)

	log.Println("[INFO] Mounting Gamification routes...")
	gamificationRoutes.GamificationRoutes(api, db)

	log.Println("[INFO] Mounting News routes...")
	newsRoutes.NewsRoutes(api, db)

	log.Println("[INFO] Mounting Expense routes...")
	expenseRoutes.ExpenseRoutes(api, db)
}
