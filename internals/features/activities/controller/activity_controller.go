// file: internals/features/activities/controller/activity_controller.go
package controller

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careconnect_backend/internals/features/activities/dto"
	"careconnect_backend/internals/features/activities/model"
	"careconnect_backend/internals/features/activities/service"
	gservice "careconnect_backend/internals/features/gamification/service"
	helper "careconnect_backend/internals/helpers"
)

type ActivityController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Volunteer *service.VolunteerService
}

func NewActivityController(db *gorm.DB) *ActivityController {
	engine := gservice.NewEngine(gservice.NewGormStore(db))
	return &ActivityController{
		DB:        db,
		Validate:  validator.New(),
		Volunteer: service.NewVolunteerService(service.NewGormVolunteerStore(db), engine),
	}
}

// 📋 GET /api/activities?search=&category=&location=&status=
func (ctrl *ActivityController) GetActivities(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ActivityModel{}).Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("activity_title ILIKE ? OR activity_description ILIKE ?", like, like)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("activity_category = ?", category)
	}
	if location := c.Query("location"); location != "" {
		q = q.Where("activity_location ->> 'name' ILIKE ?", "%"+location+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("activity_status = ?", status)
	}

	var activities []model.ActivityModel
	if err := q.Find(&activities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	return helper.List(c, activities, len(activities))
}

// 🔍 GET /api/activities/:id
func (ctrl *ActivityController) GetActivityByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activityId")
	}

	var activity model.ActivityModel
	if err := ctrl.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	var volunteers []model.ActivityVolunteerModel
	if err := ctrl.DB.
		Where("activity_volunteer_activity_id = ?", id).
		Order("created_at ASC").
		Find(&volunteers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch volunteers")
	}

	return c.JSON(fiber.Map{
		"activity":   activity,
		"volunteers": volunteers,
	})
}

// ➕ POST /api/activities — admin only
func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	activity := model.ActivityModel{
		ActivityTitle:           req.Title,
		ActivityDescription:     req.Description,
		ActivityCategory:        req.Category,
		ActivityImages:          pq.StringArray(req.Images),
		ActivityTargetMoney:     req.TargetMoney,
		ActivityTargetVolunteer: req.TargetVolunteer,
		ActivityStartDate:       req.StartDate,
		ActivityEndDate:         req.EndDate,
	}
	if req.Location != nil {
		loc, err := json.Marshal(req.Location)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid location")
		}
		activity.ActivityLocation = datatypes.JSON(loc)
	}

	if err := ctrl.DB.Create(&activity).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create activity")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Activity created", activity)
}

// ✏️ PUT /api/activities/:id — admin only
func (ctrl *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activityId")
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["activity_title"] = *req.Title
	}
	if req.Description != nil {
		updates["activity_description"] = *req.Description
	}
	if req.Category != nil {
		updates["activity_category"] = *req.Category
	}
	if req.Location != nil {
		loc, err := json.Marshal(req.Location)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid location")
		}
		updates["activity_location"] = datatypes.JSON(loc)
	}
	if req.Images != nil {
		updates["activity_images"] = pq.StringArray(req.Images)
	}
	if req.TargetMoney != nil {
		updates["activity_target_money"] = *req.TargetMoney
	}
	if req.TargetVolunteer != nil {
		updates["activity_target_volunteer"] = *req.TargetVolunteer
	}
	if req.Status != nil {
		updates["activity_status"] = *req.Status
	}
	if req.StartDate != nil {
		updates["activity_start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["activity_end_date"] = *req.EndDate
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	res := ctrl.DB.Model(&model.ActivityModel{}).Where("activity_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update activity")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Activity not found")
	}

	var activity model.ActivityModel
	if err := ctrl.DB.First(&activity, "activity_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}
	return helper.Success(c, "Activity updated", activity)
}

// 🗑️ DELETE /api/activities/:id — admin only
func (ctrl *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activityId")
	}

	res := ctrl.DB.Where("activity_id = ?", id).Delete(&model.ActivityModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Activity not found")
	}
	return helper.Success(c, "Activity deleted", nil)
}

// 🙋 POST /api/activities/:id/volunteer
func (ctrl *ActivityController) RegisterVolunteer(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activityId")
	}

	var req dto.RegisterVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid userId")
	}

	volunteer, gres, err := ctrl.Volunteer.Register(c.UserContext(), activityID, userID, req.Name, req.Phone, req.Note)
	switch err {
	case nil:
	case service.ErrActivityNotFound:
		return helper.Error(c, fiber.StatusNotFound, "Activity not found")
	case service.ErrVolunteerExists:
		return helper.Error(c, fiber.StatusConflict, "User already registered as volunteer")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register volunteer")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Registered as volunteer",
		"volunteer": volunteer,
		"gamification": fiber.Map{
			"pointsEarned":    gres.Points,
			"newAchievements": gres.NewAchievements,
		},
	})
}

// 🚪 DELETE /api/activities/:id/volunteer/:volunteerId
func (ctrl *ActivityController) UnregisterVolunteer(c *fiber.Ctx) error {
	activityID, errA := uuid.Parse(c.Params("id"))
	volunteerID, errV := uuid.Parse(c.Params("volunteerId"))
	if errA != nil || errV != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id(s)")
	}

	if err := ctrl.Volunteer.Unregister(c.UserContext(), activityID, volunteerID); err != nil {
		if err == service.ErrVolunteerNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Activity or volunteer not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to unregister volunteer")
	}
	return helper.Success(c, "Volunteer unregistered", nil)
}

// 💰 POST /api/activities/:id/donation — jalur lama, menambah langsung
// ke counter tanpa lewat payment gateway (dipakai admin untuk donasi offline).
func (ctrl *ActivityController) AddDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid activityId")
	}

	var req dto.AddDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Amount <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Donation amount must be greater than 0")
	}

	res := ctrl.DB.Model(&model.ActivityModel{}).
		Where("activity_id = ?", id).
		Updates(map[string]any{
			"activity_collected_money": gorm.Expr("activity_collected_money + ?", req.Amount),
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to add donation")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Activity not found")
	}
	return helper.Success(c, "Donation added", nil)
}
