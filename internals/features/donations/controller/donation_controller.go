// file: internals/features/donations/controller/donation_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "careconnect_backend/internals/features/activities/model"
	"careconnect_backend/internals/features/donations/dto"
	"careconnect_backend/internals/features/donations/model"
	"careconnect_backend/internals/features/donations/service"
	gservice "careconnect_backend/internals/features/gamification/service"
	userModel "careconnect_backend/internals/features/users/model"
	helper "careconnect_backend/internals/helpers"
)

type DonationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Settle   *service.SettleService
}

func NewDonationController(db *gorm.DB) *DonationController {
	engine := gservice.NewEngine(gservice.NewGormStore(db))
	return &DonationController{
		DB:       db,
		Validate: validator.New(),
		Settle:   service.NewSettleService(service.NewGormSettleStore(db), engine),
	}
}

// 💸 POST /api/donations
// Default: donasi langsung settle + gamifikasi.
// payment=invoice → buat invoice Xendit, settle menunggu webhook.
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var req dto.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid userId")
	}
	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activityId")
	}
	if req.Amount <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Donation amount must be greater than 0")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Payment == "invoice" {
		var activity activityModel.ActivityModel
		if err := ctrl.DB.First(&activity, "activity_id = ?", activityID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.Error(c, fiber.StatusNotFound, "Activity not found")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activity")
		}

		payerEmail := req.PayerEmail
		if payerEmail == "" {
			var user userModel.UserModel
			if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return helper.Error(c, fiber.StatusNotFound, "User not found")
				}
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
			}
			payerEmail = user.UserEmail
		}

		externalID := fmt.Sprintf("DONATION-%d", time.Now().UnixNano())
		inv, err := service.CreateInvoice(externalID, req.Amount, payerEmail, "Donation for "+activity.ActivityTitle)
		if err != nil {
			return helper.Error(c, fiber.StatusBadGateway, "Failed to create payment invoice")
		}

		donation := model.DonationModel{
			DonationID:         uuid.New(),
			DonationUserID:     userID,
			DonationActivityID: activityID,
			DonationAmount:     req.Amount,
			DonationStatus:     model.DonationStatusPending,
			DonationExternalID: &externalID,
			DonationInvoiceURL: inv.InvoiceURL,
		}
		if err := ctrl.DB.Create(&donation).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donation")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "Donation successfully added",
			"donation":   donation,
			"invoiceUrl": inv.InvoiceURL,
		})
	}

	// jalur default: tanpa gateway, langsung dihitung
	donation := &model.DonationModel{
		DonationID:            uuid.New(),
		DonationUserID:        userID,
		DonationActivityID:    activityID,
		DonationAmount:        req.Amount,
		DonationPaymentMethod: "direct",
	}
	gres, err := ctrl.Settle.CreateDirect(c.UserContext(), donation)
	if err != nil {
		if err == service.ErrActivityNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create donation")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Donation successfully added",
		"donation": donation,
		"gamification": fiber.Map{
			"pointsEarned":    gres.Points,
			"newAchievements": gres.NewAchievements,
		},
	})
}

// 📋 GET /api/donations?userId=&activityId=&status=
// Filter dengan uuid tidak valid diabaikan (bukan error).
func (ctrl *DonationController) GetDonations(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.DonationModel{}).Order("created_at DESC")

	if raw := c.Query("userId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q = q.Where("donation_user_id = ?", id)
		}
	}
	if raw := c.Query("activityId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q = q.Where("donation_activity_id = ?", id)
		}
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("donation_status = ?", status)
	}

	var donations []model.DonationModel
	if err := q.Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donations")
	}
	return helper.List(c, donations, len(donations))
}

// 🔍 GET /api/donations/:id
func (ctrl *DonationController) GetDonationByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid donationId")
	}

	var donation model.DonationModel
	if err := ctrl.DB.First(&donation, "donation_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch donation")
	}
	return helper.Success(c, "OK", donation)
}

// 🔔 POST /api/donations/webhook/xendit
// Verifikasi x-callback-token lebih dulu; replay webhook aman (idempoten).
func (ctrl *DonationController) HandleXenditWebhook(c *fiber.Ctx) error {
	if !helper.VerifyCallbackToken(c.Get("x-callback-token")) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid callback token")
	}

	var cb dto.XenditInvoiceCallback
	if err := c.BodyParser(&cb); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	out, err := ctrl.Settle.HandleXenditCallback(c.UserContext(), cb)
	if err != nil {
		if err == service.ErrDonationNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process webhook")
	}

	resp := fiber.Map{
		"message":  "Webhook processed successfully",
		"status":   cb.Status,
		"settled":  out.Settled,
		"replayed": out.Replayed,
	}
	if out.Settled {
		resp["gamification"] = fiber.Map{
			"pointsEarned":    out.Gamification.Points,
			"newAchievements": out.Gamification.NewAchievements,
		}
	}
	return c.JSON(resp)
}
