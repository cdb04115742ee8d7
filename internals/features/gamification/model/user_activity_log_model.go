package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserActivityLogModel adalah jurnal append-only setiap perolehan poin.
// Invariant: user_point = jumlah semua delta di sini + bonus achievement.
type UserActivityLogModel struct {
	UserActivityLogID uuid.UUID `gorm:"column:user_activity_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_activity_log_id"`

	UserActivityLogUserID uuid.UUID `gorm:"column:user_activity_log_user_id;type:uuid;not null;index" json:"user_activity_log_user_id"`

	UserActivityLogPoints   int            `gorm:"column:user_activity_log_points;not null" json:"points"`
	UserActivityLogReason   string         `gorm:"column:user_activity_log_reason;type:varchar(50);not null" json:"reason"`
	UserActivityLogMetadata datatypes.JSON `gorm:"column:user_activity_log_metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}

func (UserActivityLogModel) TableName() string {
	return "user_activity_logs"
}
