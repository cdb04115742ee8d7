// file: internals/features/activities/service/volunteer_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"careconnect_backend/internals/features/activities/model"
)

type GormVolunteerStore struct {
	db *gorm.DB
}

func NewGormVolunteerStore(db *gorm.DB) *GormVolunteerStore {
	return &GormVolunteerStore{db: db}
}

func (s *GormVolunteerStore) AddVolunteer(ctx context.Context, v *model.ActivityVolunteerModel) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ActivityModel{}).
			Where("activity_id = ?", v.ActivityVolunteerActivityID).
			Updates(map[string]any{
				"activity_collected_volunteer": gorm.Expr("activity_collected_volunteer + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrActivityNotFound
		}

		if err := tx.Create(v).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrVolunteerExists
			}
			return err
		}
		return nil
	})
}

func (s *GormVolunteerStore) RemoveVolunteer(ctx context.Context, activityID, volunteerID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(
			"activity_volunteer_activity_id = ? AND activity_volunteer_id = ?",
			activityID, volunteerID,
		).Delete(&model.ActivityVolunteerModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVolunteerNotFound
		}

		// counter tidak boleh negatif
		return tx.Model(&model.ActivityModel{}).
			Where("activity_id = ?", activityID).
			Updates(map[string]any{
				"activity_collected_volunteer": gorm.Expr("GREATEST(activity_collected_volunteer - 1, 0)"),
			}).Error
	})
}
