// file: internals/features/subscriptions/controller/subscription_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "careconnect_backend/internals/features/activities/model"
	donationModel "careconnect_backend/internals/features/donations/model"
	"careconnect_backend/internals/features/subscriptions/dto"
	"careconnect_backend/internals/features/subscriptions/model"
	"careconnect_backend/internals/features/subscriptions/service"
	userModel "careconnect_backend/internals/features/users/model"
	helper "careconnect_backend/internals/helpers"
)

type SubscriptionController struct {
	DB         *gorm.DB
	Validate   *validator.Validate
	Distribute *service.DistributionService
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{
		DB:         db,
		Validate:   validator.New(),
		Distribute: service.NewDistributionService(service.NewGormChargeStore(db)),
	}
}

func (ctrl *SubscriptionController) activeSubscription(userID uuid.UUID) (*model.SubscriptionModel, error) {
	var sub model.SubscriptionModel
	err := ctrl.DB.First(&sub, "subscription_user_id = ? AND subscription_active = TRUE", userID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// 💳 POST /api/subscriptions/payment-method
// Simpan token payment method (hasil tokenisasi di client) ke user.
func (ctrl *SubscriptionController) AddPaymentMethod(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AddPaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"user_payment_method_id": req.TokenID})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save payment method")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "Payment method added successfully", nil)
}

// 🔁 POST /api/subscriptions
func (ctrl *SubscriptionController) CreateSubscription(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Amount <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Amount must be greater than 0")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if user.UserPaymentMethodID == nil || *user.UserPaymentMethodID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Payment method required. Please add a payment method first.")
	}

	// activity dengan dana terendah saat ini, dicatat sebagai bookkeeping
	var lowest activityModel.ActivityModel
	if err := ctrl.DB.
		Where("activity_status = ?", "active").
		Order("activity_collected_money ASC").
		First(&lowest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "No activity available for subscription")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}

	externalID := fmt.Sprintf("SUBSCRIPTION-%d", time.Now().UnixNano())
	rp, err := service.CreateRecurringPayment(externalID, req.Amount, user.UserEmail, "Monthly donation subscription")
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to create recurring payment")
	}

	sub := model.SubscriptionModel{
		SubscriptionUserID:           userID,
		SubscriptionExternalID:       &externalID,
		SubscriptionXenditID:         rp.ID,
		SubscriptionAmount:           req.Amount,
		SubscriptionActive:           true,
		SubscriptionTargetActivityID: &lowest.ActivityID,
	}
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create subscription")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subscription created successfully", sub)
}

// 📄 GET /api/subscriptions/details — subscription aktif, {} kalau tidak ada
func (ctrl *SubscriptionController) GetDetails(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sub, err := ctrl.activeSubscription(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(fiber.Map{})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subscription")
	}
	return c.JSON(sub)
}

// ✏️ PATCH /api/subscriptions/update
func (ctrl *SubscriptionController) UpdateAmount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAmountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.NewAmount <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "newAmount is required")
	}

	sub, err := ctrl.activeSubscription(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Subscription not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subscription")
	}

	if _, err := service.EditRecurringAmount(sub.SubscriptionXenditID, req.NewAmount); err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to update recurring payment")
	}

	if err := ctrl.DB.Model(&model.SubscriptionModel{}).
		Where("subscription_id = ?", sub.SubscriptionID).
		Updates(map[string]any{"subscription_amount": req.NewAmount}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update subscription")
	}

	sub.SubscriptionAmount = req.NewAmount
	return helper.Success(c, "Subscription amount updated", sub)
}

// 🛑 DELETE /api/subscriptions/cancel
func (ctrl *SubscriptionController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sub, err := ctrl.activeSubscription(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Subscription not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subscription")
	}

	if _, err := service.StopRecurringPayment(sub.SubscriptionXenditID); err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to stop recurring payment")
	}

	if err := ctrl.DB.Model(&model.SubscriptionModel{}).
		Where("subscription_id = ?", sub.SubscriptionID).
		Updates(map[string]any{"subscription_active": false}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to cancel subscription")
	}
	return helper.Success(c, "Subscription cancelled", nil)
}

// 🧾 GET /api/subscriptions/history — semua donasi recurring milik user
func (ctrl *SubscriptionController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var donations []donationModel.DonationModel
	if err := ctrl.DB.
		Where("donation_user_id = ? AND donation_payment_method = ?", userID, "xendit_recurring").
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch history")
	}
	return helper.List(c, donations, len(donations))
}

// 📊 GET /api/subscriptions/donations — ringkasan donasi subscription aktif
func (ctrl *SubscriptionController) GetSubscriptionDonations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sub, err := ctrl.activeSubscription(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "No active subscription found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subscription")
	}

	var donations []donationModel.DonationModel
	if err := ctrl.DB.
		Where("donation_subscription_id = ?", sub.SubscriptionID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}

	var totalAmount int64
	for _, d := range donations {
		totalAmount += d.DonationAmount
	}

	return c.JSON(fiber.Map{
		"subscription":   sub,
		"totalDonations": len(donations),
		"totalAmount":    totalAmount,
		"donations":      donations,
	})
}

// 🔔 POST /api/subscriptions/webhook/xendit
// Charge recurring berhasil → salurkan ke activity. Tanpa gamifikasi.
func (ctrl *SubscriptionController) HandleRecurringWebhook(c *fiber.Ctx) error {
	if !helper.VerifyCallbackToken(c.Get("x-callback-token")) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid callback token")
	}

	var cb dto.XenditRecurringCallback
	if err := c.BodyParser(&cb); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if cb.Status != "SUCCEEDED" {
		return c.JSON(fiber.Map{"message": "Webhook received but not a successful payment"})
	}

	out, err := ctrl.Distribute.ProcessCharge(c.UserContext(), cb.ExternalID, int64(cb.Amount))
	if err != nil {
		switch err {
		case service.ErrSubscriptionNotFound:
			return helper.Error(c, fiber.StatusNotFound, "Subscription not found")
		case service.ErrNoActivity:
			return helper.Error(c, fiber.StatusNotFound, "No activity available")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to process webhook")
		}
	}

	return c.JSON(fiber.Map{
		"message":        "Webhook processed successfully",
		"targetActivity": out.Activity.ActivityTitle,
		"donationAmount": out.Amount,
	})
}
