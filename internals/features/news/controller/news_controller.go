// file: internals/features/news/controller/news_controller.go
package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	activityModel "careconnect_backend/internals/features/activities/model"
	"careconnect_backend/internals/features/news/dto"
	"careconnect_backend/internals/features/news/model"
	helper "careconnect_backend/internals/helpers"
)

type NewsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{
		DB:       db,
		Validate: validator.New(),
	}
}

// 📰 GET /api/news?activityId=
func (ctrl *NewsController) GetNews(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.NewsModel{}).Order("created_at DESC")

	if raw := c.Query("activityId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q = q.Where("news_activity_id = ?", id)
		}
	}

	var news []model.NewsModel
	if err := q.Find(&news).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}
	return helper.List(c, news, len(news))
}

// 🆕 GET /api/news/latest?limit=5
func (ctrl *NewsController) GetLatest(c *fiber.Ctx) error {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	var news []model.NewsModel
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&news).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}
	return helper.List(c, news, len(news))
}

// 🔍 GET /api/news/:id
func (ctrl *NewsController) GetNewsByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid newsId")
	}

	var news model.NewsModel
	if err := ctrl.DB.First(&news, "news_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "News not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}
	return helper.Success(c, "OK", news)
}

// ➕ POST /api/news — admin only
func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
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

	news := model.NewsModel{
		NewsActivityID: activityID,
		NewsTitle:      req.Title,
		NewsContent:    req.Content,
		NewsImages:     pq.StringArray(req.Images),
	}
	if err := ctrl.DB.Create(&news).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create news")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "News created", news)
}

// ✏️ PUT /api/news/:id — admin only
func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid newsId")
	}

	var req dto.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["news_title"] = *req.Title
	}
	if req.Content != nil {
		updates["news_content"] = *req.Content
	}
	if req.Images != nil {
		updates["news_images"] = pq.StringArray(req.Images)
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	res := ctrl.DB.Model(&model.NewsModel{}).Where("news_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update news")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "News not found")
	}
	return helper.Success(c, "News updated", nil)
}

// 🗑️ DELETE /api/news/:id — admin only
func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid newsId")
	}

	res := ctrl.DB.Where("news_id = ?", id).Delete(&model.NewsModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete news")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "News not found")
	}
	return helper.Success(c, "News deleted", nil)
}
