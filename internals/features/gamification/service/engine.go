// file: internals/features/gamification/service/engine.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	gconfig "careconnect_backend/internals/features/gamification/config"
)

var ErrUserNotFound = errors.New("user not found")

const (
	ReasonDonation          = "donation"
	ReasonVolunteerRegister = "volunteer_register"
)

// Store adalah kontrak persistence yang dibutuhkan engine.
// Implementasi produksi ada di GormStore; test memakai fake.
type Store interface {
	// AddPoints menambah poin user dan menulis entry activity log secara atomik.
	AddPoints(ctx context.Context, userID uuid.UUID, delta int, reason string, metadata map[string]any) error
	// AwardAchievement menyisipkan achievement kalau belum ada.
	// Return true hanya saat baru terbuka (bonus poin ikut ditambahkan).
	AwardAchievement(ctx context.Context, userID uuid.UUID, ach gconfig.Achievement) (bool, error)
	// AddDonationTotal menambah akumulasi donasi dan mengembalikan total baru.
	AddDonationTotal(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
	// AddVolunteerCount menambah counter kegiatan relawan dan mengembalikan nilai baru.
	AddVolunteerCount(ctx context.Context, userID uuid.UUID) (int, error)
}

// Engine menerjemahkan aksi user menjadi perubahan poin + achievement.
// Semua pemanggilan dari flow utama bersifat best-effort: kegagalan di sini
// tidak boleh menggagalkan donasi/registrasi relawan.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Result merangkum efek samping gamifikasi supaya caller bisa
// mengobservasi kegagalan tanpa ikut gagal (bukan silent swallow).
type Result struct {
	Points          int      `json:"points"`
	NewAchievements []string `json:"new_achievements,omitempty"`
	Err             error    `json:"-"`
}

func (r Result) Failed() bool { return r.Err != nil }

// AddPoints menambah poin + entry log. User id yang tidak valid adalah
// no-op yang disengaja, bukan error (kontrak lama).
func (e *Engine) AddPoints(ctx context.Context, userID string, delta int, reason string, metadata map[string]any) error {
	id, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return nil
	}
	return e.store.AddPoints(ctx, id, delta, reason, metadata)
}

// ProcessDonation dipanggil setelah donasi settle: poin = floor(amount/10rb),
// akumulasi donasi bertambah, lalu tiga predikat achievement dievaluasi
// terhadap total pasca-increment. Tiap predikat independen.
func (e *Engine) ProcessDonation(ctx context.Context, userID string, amount int64) Result {
	id, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return Result{}
	}

	points := gconfig.CalculateDonationPoints(amount)
	res := Result{Points: points}

	if err := e.store.AddPoints(ctx, id, points, ReasonDonation, map[string]any{
		"amount": amount,
		"points": points,
	}); err != nil {
		res.Err = err
		return res
	}

	total, err := e.store.AddDonationTotal(ctx, id, amount)
	if err != nil {
		res.Err = err
		return res
	}

	// Donasi pertama: akumulasi sebelum event ini masih nol.
	// (Perbandingan total == amount di versi lama salah saat webhook
	// datang tidak berurutan.)
	if total-amount == 0 {
		e.award(ctx, id, gconfig.AchFirstDonation, &res)
	}
	if total >= gconfig.GenerousDonorThreshold {
		e.award(ctx, id, gconfig.AchGenerousDonor, &res)
	}
	if total >= gconfig.SuperDonorThreshold {
		e.award(ctx, id, gconfig.AchSuperDonor, &res)
	}

	return res
}

// ProcessVolunteer dipanggil setelah registrasi relawan berhasil.
func (e *Engine) ProcessVolunteer(ctx context.Context, userID string) Result {
	id, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return Result{}
	}

	points := gconfig.PointVolunteerRegister
	res := Result{Points: points}

	if err := e.store.AddPoints(ctx, id, points, ReasonVolunteerRegister, map[string]any{
		"points": points,
	}); err != nil {
		res.Err = err
		return res
	}

	count, err := e.store.AddVolunteerCount(ctx, id)
	if err != nil {
		res.Err = err
		return res
	}

	if count == 1 {
		e.award(ctx, id, gconfig.AchFirstVolunteer, &res)
	}
	if count >= gconfig.ActiveVolunteerThreshold {
		e.award(ctx, id, gconfig.AchActiveVolunteer, &res)
	}

	return res
}

func (e *Engine) award(ctx context.Context, userID uuid.UUID, ach gconfig.Achievement, res *Result) {
	unlocked, err := e.store.AwardAchievement(ctx, userID, ach)
	if err != nil {
		log.Printf("[ERROR] Gagal award achievement %s untuk user %s: %v", ach.ID, userID, err)
		if res.Err == nil {
			res.Err = err
		}
		return
	}
	if unlocked {
		log.Printf("🏆 User %s unlocked achievement: %s", userID, ach.Name)
		res.NewAchievements = append(res.NewAchievements, ach.ID)
		res.Points += ach.Points
	}
}
