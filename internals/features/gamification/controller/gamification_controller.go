// file: internals/features/gamification/controller/gamification_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gconfig "careconnect_backend/internals/features/gamification/config"
	gmodel "careconnect_backend/internals/features/gamification/model"
	"careconnect_backend/internals/features/gamification/service"
	userModel "careconnect_backend/internals/features/users/model"
	helper "careconnect_backend/internals/helpers"
)

type GamificationController struct {
	DB *gorm.DB
}

func NewGamificationController(db *gorm.DB) *GamificationController {
	return &GamificationController{DB: db}
}

// 🎮 GET /api/gamification/profile/:userId
// Profil gamifikasi lengkap: poin, level + progres, statistik, achievement,
// dan 10 aktivitas poin terakhir (terbaru dulu).
func (ctrl *GamificationController) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	var achievements []gmodel.UserAchievementModel
	if err := ctrl.DB.
		Where("user_achievement_user_id = ?", userID).
		Order("user_achievement_unlocked_at DESC").
		Find(&achievements).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch achievements")
	}

	var recent []gmodel.UserActivityLogModel
	if err := ctrl.DB.
		Where("user_activity_log_user_id = ?", userID).
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch activity log")
	}

	current, next, toNext, progress := gconfig.ProgressToNext(user.UserPoint)

	return c.JSON(fiber.Map{
		"userId":            user.UserID,
		"name":              user.UserName,
		"points":            user.UserPoint,
		"currentLevel":      current,
		"nextLevel":         next,
		"pointsToNextLevel": toNext,
		"progress":          progress,
		"stats": fiber.Map{
			"totalDonations":           user.UserTotalDonations,
			"totalVolunteerActivities": user.UserTotalVolunteerActivities,
			"achievementsCount":        len(achievements),
		},
		"achievements":   achievements,
		"recentActivity": recent,
	})
}

// 🏆 GET /api/gamification/leaderboard?type=points|donations|volunteers&limit=100
func (ctrl *GamificationController) GetLeaderboard(c *fiber.Ctx) error {
	metric := service.ParseMetric(c.Query("type"))

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	var users []userModel.UserModel
	if err := ctrl.DB.Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch leaderboard")
	}

	// hitung achievement per user sekali jalan
	type achCount struct {
		UserID uuid.UUID `gorm:"column:user_achievement_user_id"`
		Total  int       `gorm:"column:total"`
	}
	var counts []achCount
	if err := ctrl.DB.Model(&gmodel.UserAchievementModel{}).
		Select("user_achievement_user_id, COUNT(*) AS total").
		Group("user_achievement_user_id").
		Scan(&counts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch leaderboard")
	}
	achievementCounts := make(map[uuid.UUID]int, len(counts))
	for _, cnt := range counts {
		achievementCounts[cnt.UserID] = cnt.Total
	}

	entries := service.BuildLeaderboard(users, metric, limit, achievementCounts)

	return c.JSON(fiber.Map{
		"type":        string(metric),
		"leaderboard": entries,
	})
}

// 📜 GET /api/gamification/achievements — katalog semua achievement
func (ctrl *GamificationController) GetAllAchievements(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"achievements": gconfig.AllAchievements(),
		"levels":       gconfig.Levels,
	})
}

// 🗂️ GET /api/gamification/achievements/:userId
// Katalog achievement dengan flag unlocked + waktu terbuka per user.
func (ctrl *GamificationController) GetUserAchievements(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var unlocked []gmodel.UserAchievementModel
	if err := ctrl.DB.
		Where("user_achievement_user_id = ?", userID).
		Find(&unlocked).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch achievements")
	}

	unlockedAt := make(map[string]gmodel.UserAchievementModel, len(unlocked))
	for _, a := range unlocked {
		unlockedAt[a.UserAchievementCode] = a
	}

	type achievementStatus struct {
		gconfig.Achievement
		Unlocked   bool        `json:"unlocked"`
		UnlockedAt interface{} `json:"unlockedAt,omitempty"`
	}

	catalog := gconfig.AllAchievements()
	out := make([]achievementStatus, 0, len(catalog))
	for _, ach := range catalog {
		status := achievementStatus{Achievement: ach}
		if row, ok := unlockedAt[ach.ID]; ok {
			status.Unlocked = true
			status.UnlockedAt = row.UserAchievementUnlockedAt
		}
		out = append(out, status)
	}

	return c.JSON(fiber.Map{
		"achievements": out,
		"total":        len(catalog),
		"unlocked":     len(unlocked),
	})
}
