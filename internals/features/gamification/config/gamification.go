// file: internals/features/gamification/config/gamification.go
package config

import "fmt"

/* =========================================================
   POINT RULES
   ========================================================= */

const (
	// 1 point per 10.000 rupiah donasi
	PointDonationPer10K = 1
	DonationPointUnit   = 10_000

	// 50 points untuk register volunteer
	PointVolunteerRegister = 50

	// 100 points ketika activity selesai (bonus untuk volunteers)
	PointActivityComplete = 100

	// 5 points daily login (optional)
	PointDailyLogin = 5
)

// Ambang achievement donasi (rupiah)
const (
	GenerousDonorThreshold = 1_000_000
	SuperDonorThreshold    = 5_000_000
)

// Ambang achievement volunteer
const ActiveVolunteerThreshold = 5

/* =========================================================
   LEVELS
   ========================================================= */

type Level struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
	// MaxPoints 0 = tanpa batas (tier terakhir)
	MaxPoints int    `json:"max_points,omitempty"`
	Badge     string `json:"badge"`
}

// Levels urut menaik; tier terakhir tidak berbatas atas.
var Levels = []Level{
	{Level: 1, Name: "Pemula", MinPoints: 0, MaxPoints: 99, Badge: "🌱"},
	{Level: 2, Name: "Penolong", MinPoints: 100, MaxPoints: 299, Badge: "🤝"},
	{Level: 3, Name: "Pejuang", MinPoints: 300, MaxPoints: 599, Badge: "💪"},
	{Level: 4, Name: "Pahlawan", MinPoints: 600, MaxPoints: 999, Badge: "⭐"},
	{Level: 5, Name: "Legenda", MinPoints: 1000, MaxPoints: 1999, Badge: "🏆"},
	{Level: 6, Name: "Champion", MinPoints: 2000, MaxPoints: 0, Badge: "👑"},
}

// LevelFor mengembalikan level tertinggi yang ambang minimalnya terpenuhi.
func LevelFor(points int) Level {
	for i := len(Levels) - 1; i >= 0; i-- {
		if points >= Levels[i].MinPoints {
			return Levels[i]
		}
	}
	return Levels[0]
}

// NextLevelAfter mengembalikan tier berikutnya, nil kalau sudah tier terakhir.
func NextLevelAfter(current Level) *Level {
	for i := range Levels {
		if Levels[i].Level == current.Level+1 {
			return &Levels[i]
		}
	}
	return nil
}

// ProgressToNext menghitung level saat ini, level berikutnya, sisa poin,
// dan persentase progres (dua desimal, kontrak API lama: string + "%").
func ProgressToNext(points int) (current Level, next *Level, pointsToNext int, progress string) {
	current = LevelFor(points)
	next = NextLevelAfter(current)
	if next == nil {
		return current, nil, 0, "100%"
	}
	pointsToNext = next.MinPoints - points
	pct := float64(points-current.MinPoints) / float64(next.MinPoints-current.MinPoints) * 100
	return current, next, pointsToNext, fmt.Sprintf("%.2f%%", pct)
}

/* =========================================================
   ACHIEVEMENTS
   ========================================================= */

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
	Points      int    `json:"points"`
}

var (
	AchFirstDonation = Achievement{
		ID:          "first_donation",
		Name:        "Donatur Pertama",
		Description: "Melakukan donasi pertama kali",
		Badge:       "💝",
		Points:      10,
	}
	AchFirstVolunteer = Achievement{
		ID:          "first_volunteer",
		Name:        "Relawan Pertama",
		Description: "Mendaftar sebagai relawan pertama kali",
		Badge:       "🙋",
		Points:      20,
	}
	AchGenerousDonor = Achievement{
		ID:          "generous_donor",
		Name:        "Donatur Dermawan",
		Description: "Total donasi mencapai 1 juta rupiah",
		Badge:       "💎",
		Points:      100,
	}
	AchActiveVolunteer = Achievement{
		ID:          "active_volunteer",
		Name:        "Relawan Aktif",
		Description: "Terdaftar di 5 kegiatan",
		Badge:       "🔥",
		Points:      150,
	}
	AchSuperDonor = Achievement{
		ID:          "super_donor",
		Name:        "Super Donatur",
		Description: "Total donasi mencapai 5 juta rupiah",
		Badge:       "🌟",
		Points:      500,
	}
)

// AllAchievements mengembalikan katalog achievement (urutan stabil).
func AllAchievements() []Achievement {
	return []Achievement{
		AchFirstDonation,
		AchFirstVolunteer,
		AchGenerousDonor,
		AchActiveVolunteer,
		AchSuperDonor,
	}
}

// CalculateDonationPoints menghitung poin dari nominal donasi (dibulatkan ke bawah).
func CalculateDonationPoints(amount int64) int {
	if amount <= 0 {
		return 0
	}
	return int(amount/DonationPointUnit) * PointDonationPer10K
}
