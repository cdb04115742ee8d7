// file: internals/features/gamification/service/engine_store.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gconfig "careconnect_backend/internals/features/gamification/config"
	gmodel "careconnect_backend/internals/features/gamification/model"
	userModel "careconnect_backend/internals/features/users/model"
)

// GormStore adalah implementasi Store di atas Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AddPoints(ctx context.Context, userID uuid.UUID, delta int, reason string, metadata map[string]any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{"user_point": gorm.Expr("user_point + ?", delta)})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}

		meta, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		entry := gmodel.UserActivityLogModel{
			UserActivityLogUserID:   userID,
			UserActivityLogPoints:   delta,
			UserActivityLogReason:   reason,
			UserActivityLogMetadata: datatypes.JSON(meta),
		}
		return tx.Create(&entry).Error
	})
}

func (s *GormStore) AwardAchievement(ctx context.Context, userID uuid.UUID, ach gconfig.Achievement) (bool, error) {
	unlocked := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := gmodel.UserAchievementModel{
			UserAchievementUserID:      userID,
			UserAchievementCode:        ach.ID,
			UserAchievementName:        ach.Name,
			UserAchievementDescription: ach.Description,
			UserAchievementBadge:       ach.Badge,
			UserAchievementPoints:      ach.Points,
			UserAchievementUnlockedAt:  time.Now(),
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// sudah pernah terbuka — idempotent no-op
			return nil
		}
		unlocked = true
		return tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{"user_point": gorm.Expr("user_point + ?", ach.Points)}).Error
	})
	return unlocked, err
}

func (s *GormStore) AddDonationTotal(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	var total int64
	res := s.db.WithContext(ctx).Raw(
		`UPDATE users
		    SET user_total_donations = user_total_donations + ?, updated_at = NOW()
		  WHERE user_id = ?
		  RETURNING user_total_donations`,
		amount, userID,
	).Scan(&total)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}
	return total, nil
}

func (s *GormStore) AddVolunteerCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	res := s.db.WithContext(ctx).Raw(
		`UPDATE users
		    SET user_total_volunteer_activities = user_total_volunteer_activities + 1, updated_at = NOW()
		  WHERE user_id = ?
		  RETURNING user_total_volunteer_activities`,
		userID,
	).Scan(&count)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}
	return count, nil
}
