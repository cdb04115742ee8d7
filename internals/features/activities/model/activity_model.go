// file: internals/features/activities/model/activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ActivityModel merepresentasikan kegiatan sosial/cause yang bisa
// menerima donasi dan relawan.
// activity_location: JSONB {name, lat, lng}
type ActivityModel struct {
	ActivityID uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`

	ActivityTitle       string `gorm:"column:activity_title;size:200;not null" json:"activity_title"`
	ActivityDescription string `gorm:"column:activity_description;type:text" json:"activity_description"`
	ActivityCategory    string `gorm:"column:activity_category;size:50;index" json:"activity_category"`

	ActivityLocation datatypes.JSON `gorm:"column:activity_location;type:jsonb" json:"activity_location,omitempty"`
	ActivityImages   pq.StringArray `gorm:"column:activity_images;type:text[]" json:"activity_images,omitempty"`

	// Target & realisasi donasi (rupiah)
	ActivityTargetMoney    int64 `gorm:"column:activity_target_money;not null;default:0" json:"activity_target_money"`
	ActivityCollectedMoney int64 `gorm:"column:activity_collected_money;not null;default:0" json:"activity_collected_money"`

	// Target & realisasi relawan
	ActivityTargetVolunteer    int `gorm:"column:activity_target_volunteer;not null;default:0" json:"activity_target_volunteer"`
	ActivityCollectedVolunteer int `gorm:"column:activity_collected_volunteer;not null;default:0" json:"activity_collected_volunteer"`

	ActivityStatus string `gorm:"column:activity_status;type:varchar(20);not null;default:'active'" json:"activity_status"`

	ActivityStartDate *time.Time `gorm:"column:activity_start_date" json:"activity_start_date,omitempty"`
	ActivityEndDate   *time.Time `gorm:"column:activity_end_date" json:"activity_end_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
