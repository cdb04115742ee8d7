// file: internals/features/activities/dto/activity_dto.go
package dto

import (
	"strings"
	"time"
)

type ActivityLocation struct {
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type CreateActivityRequest struct {
	Title           string            `json:"title" validate:"required,min=3,max=200"`
	Description     string            `json:"description" validate:"required"`
	Category        string            `json:"category" validate:"required,max=50"`
	Location        *ActivityLocation `json:"location"`
	Images          []string          `json:"images"`
	TargetMoney     int64             `json:"targetMoney" validate:"gte=0"`
	TargetVolunteer int               `json:"targetVolunteer" validate:"gte=0"`
	StartDate       *time.Time        `json:"startDate"`
	EndDate         *time.Time        `json:"endDate"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(strings.ToLower(r.Category))
}

// UpdateActivityRequest: semua field opsional, hanya yang non-nil yang diubah.
type UpdateActivityRequest struct {
	Title           *string           `json:"title" validate:"omitempty,min=3,max=200"`
	Description     *string           `json:"description"`
	Category        *string           `json:"category" validate:"omitempty,max=50"`
	Location        *ActivityLocation `json:"location"`
	Images          []string          `json:"images"`
	TargetMoney     *int64            `json:"targetMoney" validate:"omitempty,gte=0"`
	TargetVolunteer *int              `json:"targetVolunteer" validate:"omitempty,gte=0"`
	Status          *string           `json:"status" validate:"omitempty,oneof=active completed cancelled"`
	StartDate       *time.Time        `json:"startDate"`
	EndDate         *time.Time        `json:"endDate"`
}

type RegisterVolunteerRequest struct {
	UserID string `json:"userId" validate:"required,uuid4"`
	Name   string `json:"name" validate:"omitempty,max=100"`
	Phone  string `json:"phone" validate:"omitempty,max=30"`
	Note   string `json:"note"`
}

type AddDonationRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}
