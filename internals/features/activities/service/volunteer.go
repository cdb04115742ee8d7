// file: internals/features/activities/service/volunteer.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careconnect_backend/internals/features/activities/model"
	gservice "careconnect_backend/internals/features/gamification/service"
)

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrVolunteerExists   = errors.New("volunteer already registered")
	ErrVolunteerNotFound = errors.New("volunteer not found")
)

// VolunteerStore adalah kontrak persistence registrasi relawan.
type VolunteerStore interface {
	// AddVolunteer menaikkan counter relawan activity dan menyisipkan baris
	// pendaftaran secara atomik. Duplikat → ErrVolunteerExists,
	// activity tak ada → ErrActivityNotFound.
	AddVolunteer(ctx context.Context, v *model.ActivityVolunteerModel) error
	// RemoveVolunteer menghapus pendaftaran (by id sub-record) dan menurunkan
	// counter (tidak pernah di bawah nol). Tidak ada → ErrVolunteerNotFound.
	RemoveVolunteer(ctx context.Context, activityID, volunteerID uuid.UUID) error
}

// PointProcessor: subset engine gamifikasi yang dipakai flow relawan.
type PointProcessor interface {
	ProcessVolunteer(ctx context.Context, userID string) gservice.Result
}

type VolunteerService struct {
	store  VolunteerStore
	points PointProcessor
}

func NewVolunteerService(store VolunteerStore, points PointProcessor) *VolunteerService {
	return &VolunteerService{store: store, points: points}
}

// Register mendaftarkan user sebagai relawan. Keunikan (activity, user)
// dijaga index DB, jadi race daftar-ganda tetap menghasilkan ErrVolunteerExists.
// Gamifikasi berjalan setelah pendaftaran sukses dan tidak menggagalkannya.
func (s *VolunteerService) Register(ctx context.Context, activityID, userID uuid.UUID, name, phone, note string) (*model.ActivityVolunteerModel, gservice.Result, error) {
	v := &model.ActivityVolunteerModel{
		ActivityVolunteerID:         uuid.New(),
		ActivityVolunteerActivityID: activityID,
		ActivityVolunteerUserID:     userID,
		ActivityVolunteerName:       name,
		ActivityVolunteerPhone:      phone,
		ActivityVolunteerNote:       note,
		ActivityVolunteerStatus:     "registered",
	}
	if err := s.store.AddVolunteer(ctx, v); err != nil {
		return nil, gservice.Result{}, err
	}

	res := s.points.ProcessVolunteer(ctx, userID.String())
	return v, res, nil
}

func (s *VolunteerService) Unregister(ctx context.Context, activityID, volunteerID uuid.UUID) error {
	return s.store.RemoveVolunteer(ctx, activityID, volunteerID)
}
