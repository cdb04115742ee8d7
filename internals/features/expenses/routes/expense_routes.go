// file: internals/features/expenses/routes/expense_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	expenseController "careconnect_backend/internals/features/expenses/controller"
	authMiddleware "careconnect_backend/internals/middlewares/auth"
)

func ExpenseRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := expenseController.NewExpenseController(db)

	expenses := r.Group("/expenses")

	// 🔓 public read (transparansi penggunaan dana)
	expenses.Get("", ctrl.GetExpenses)
	expenses.Get("/activity/:activityId", ctrl.GetByActivity)
	expenses.Get("/:id", ctrl.GetExpenseByID)

	// 🔐 admin only
	admin := expenses.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.IsAdmin(),
	)
	admin.Post("", ctrl.CreateExpense)
	admin.Put("/:id", ctrl.UpdateExpense)
	admin.Delete("/:id", ctrl.DeleteExpense)
}
