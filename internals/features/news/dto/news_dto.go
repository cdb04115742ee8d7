// file: internals/features/news/dto/news_dto.go
package dto

import "strings"

type CreateNewsRequest struct {
	ActivityID string   `json:"activityId" validate:"required,uuid4"`
	Title      string   `json:"title" validate:"required,min=3,max=200"`
	Content    string   `json:"content" validate:"required"`
	Images     []string `json:"images" validate:"omitempty,dive,url"`
}

func (r *CreateNewsRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

type UpdateNewsRequest struct {
	Title   *string  `json:"title" validate:"omitempty,min=3,max=200"`
	Content *string  `json:"content"`
	Images  []string `json:"images" validate:"omitempty,dive,url"`
}
