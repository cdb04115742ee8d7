// file: internals/features/activities/model/activity_volunteer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityVolunteerModel adalah pendaftaran relawan per kegiatan.
// Unik per (activity, user): daftar dua kali ditolak di level DB.
type ActivityVolunteerModel struct {
	ActivityVolunteerID uuid.UUID `gorm:"column:activity_volunteer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_volunteer_id"`

	ActivityVolunteerActivityID uuid.UUID `gorm:"column:activity_volunteer_activity_id;type:uuid;not null;uniqueIndex:uq_activity_volunteer_user" json:"activity_id"`
	ActivityVolunteerUserID     uuid.UUID `gorm:"column:activity_volunteer_user_id;type:uuid;not null;uniqueIndex:uq_activity_volunteer_user" json:"user_id"`

	ActivityVolunteerName  string `gorm:"column:activity_volunteer_name;size:100" json:"name,omitempty"`
	ActivityVolunteerPhone string `gorm:"column:activity_volunteer_phone;size:30" json:"phone,omitempty"`
	ActivityVolunteerNote  string `gorm:"column:activity_volunteer_note;type:text" json:"note,omitempty"`

	ActivityVolunteerStatus string `gorm:"column:activity_volunteer_status;type:varchar(20);not null;default:'registered'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"registered_at"`
}

func (ActivityVolunteerModel) TableName() string {
	return "activity_volunteers"
}
