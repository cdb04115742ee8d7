package model

import (
	"time"

	"github.com/google/uuid"
)

// UserAchievementModel menyimpan achievement yang sudah terbuka per user.
// Unik per (user, kode) supaya unlock bersifat idempotent.
type UserAchievementModel struct {
	UserAchievementID uuid.UUID `gorm:"column:user_achievement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_achievement_id"`

	UserAchievementUserID uuid.UUID `gorm:"column:user_achievement_user_id;type:uuid;not null;uniqueIndex:uq_user_achievement" json:"user_achievement_user_id"`
	UserAchievementCode   string    `gorm:"column:user_achievement_code;type:varchar(50);not null;uniqueIndex:uq_user_achievement" json:"id"`

	UserAchievementName        string `gorm:"column:user_achievement_name;type:varchar(100);not null" json:"name"`
	UserAchievementDescription string `gorm:"column:user_achievement_description;type:text" json:"description"`
	UserAchievementBadge       string `gorm:"column:user_achievement_badge;type:varchar(20)" json:"badge"`
	UserAchievementPoints      int    `gorm:"column:user_achievement_points;not null;default:0" json:"points"`

	UserAchievementUnlockedAt time.Time `gorm:"column:user_achievement_unlocked_at;not null" json:"unlockedAt"`
}

func (UserAchievementModel) TableName() string {
	return "user_achievements"
}
