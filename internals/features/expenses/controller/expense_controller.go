// file: internals/features/expenses/controller/expense_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "careconnect_backend/internals/features/activities/model"
	"careconnect_backend/internals/features/expenses/dto"
	"careconnect_backend/internals/features/expenses/model"
	helper "careconnect_backend/internals/helpers"
)

type ExpenseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{
		DB:       db,
		Validate: validator.New(),
	}
}

// 🧾 GET /api/expenses?activityId=
func (ctrl *ExpenseController) GetExpenses(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ExpenseModel{}).Order("created_at DESC")

	if raw := c.Query("activityId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q = q.Where("expense_activity_id = ?", id)
		}
	}

	var expenses []model.ExpenseModel
	if err := q.Find(&expenses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch expenses")
	}
	return helper.List(c, expenses, len(expenses))
}

// 📊 GET /api/expenses/activity/:activityId — daftar + total per activity
func (ctrl *ExpenseController) GetByActivity(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("activityId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activityId")
	}

	var expenses []model.ExpenseModel
	if err := ctrl.DB.
		Where("expense_activity_id = ?", activityID).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch expenses")
	}

	var totalAmount int64
	for _, e := range expenses {
		totalAmount += e.ExpenseAmount
	}

	return c.JSON(fiber.Map{
		"expenses":    expenses,
		"totalAmount": totalAmount,
	})
}

// ➕ POST /api/expenses — admin only
func (ctrl *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Amount <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Amount must be a positive number")
	}

	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activityId")
	}

	var count int64
	if err := ctrl.DB.Model(&activityModel.ActivityModel{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Activity not found")
	}

	expense := model.ExpenseModel{
		ExpenseActivityID:  activityID,
		ExpenseDescription: req.Description,
		ExpenseAmount:      req.Amount,
		ExpenseDate:        req.Date,
	}
	if err := ctrl.DB.Create(&expense).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create expense")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Expense created", expense)
}

// 🔍 GET /api/expenses/:id
func (ctrl *ExpenseController) GetExpenseByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid expenseId")
	}

	var expense model.ExpenseModel
	if err := ctrl.DB.First(&expense, "expense_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Expense not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch expense")
	}
	return helper.Success(c, "OK", expense)
}

// ✏️ PUT /api/expenses/:id — admin only
func (ctrl *ExpenseController) UpdateExpense(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid expenseId")
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]any{}
	if req.Description != nil {
		updates["expense_description"] = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Amount must be a positive number")
		}
		updates["expense_amount"] = *req.Amount
	}
	if req.Date != nil {
		updates["expense_date"] = *req.Date
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	res := ctrl.DB.Model(&model.ExpenseModel{}).Where("expense_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update expense")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Expense not found")
	}
	return helper.Success(c, "Expense updated", nil)
}

// 🗑️ DELETE /api/expenses/:id — admin only
func (ctrl *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid expenseId")
	}

	res := ctrl.DB.Where("expense_id = ?", id).Delete(&model.ExpenseModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete expense")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Expense not found")
	}
	return helper.Success(c, "Expense deleted", nil)
}
