// file: internals/features/news/model/news_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NewsModel adalah kabar perkembangan sebuah activity untuk donatur.
type NewsModel struct {
	NewsID uuid.UUID `gorm:"column:news_id;type:uuid;default:gen_random_uuid();primaryKey" json:"news_id"`

	NewsActivityID uuid.UUID `gorm:"column:news_activity_id;type:uuid;not null;index" json:"news_activity_id"`

	NewsTitle   string         `gorm:"column:news_title;size:200;not null" json:"news_title"`
	NewsContent string         `gorm:"column:news_content;type:text;not null" json:"news_content"`
	NewsImages  pq.StringArray `gorm:"column:news_images;type:text[]" json:"news_images,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NewsModel) TableName() string {
	return "news"
}
