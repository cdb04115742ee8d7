// file: internals/features/gamification/service/leaderboard.go
package service

import (
	"sort"

	"github.com/google/uuid"

	gconfig "careconnect_backend/internals/features/gamification/config"
	userModel "careconnect_backend/internals/features/users/model"
)

// Metric menentukan kolom pengurutan leaderboard.
type Metric string

const (
	MetricPoints     Metric = "points"
	MetricDonations  Metric = "donations"
	MetricVolunteers Metric = "volunteers"
)

// ParseMetric: nilai tak dikenal jatuh ke points (kontrak lama).
func ParseMetric(s string) Metric {
	switch Metric(s) {
	case MetricDonations:
		return MetricDonations
	case MetricVolunteers:
		return MetricVolunteers
	default:
		return MetricPoints
	}
}

type LeaderboardEntry struct {
	Rank                     int           `json:"rank"`
	UserID                   uuid.UUID     `json:"userId"`
	Name                     string        `json:"name"`
	Points                   int           `json:"points"`
	Level                    gconfig.Level `json:"level"`
	TotalDonations           int64         `json:"totalDonations"`
	TotalVolunteerActivities int           `json:"totalVolunteerActivities"`
	AchievementsCount        int           `json:"achievementsCount"`
}

// BuildLeaderboard mengurutkan user menurun berdasarkan metric, memotong ke
// limit, dan memberi rank = posisi + 1 (tanpa shared rank untuk nilai seri).
// Field kredensial tidak pernah ikut: entry hanya memuat data publik.
func BuildLeaderboard(users []userModel.UserModel, metric Metric, limit int, achievementCounts map[uuid.UUID]int) []LeaderboardEntry {
	sorted := make([]userModel.UserModel, len(users))
	copy(sorted, users)

	sort.SliceStable(sorted, func(i, j int) bool {
		switch metric {
		case MetricDonations:
			return sorted[i].UserTotalDonations > sorted[j].UserTotalDonations
		case MetricVolunteers:
			return sorted[i].UserTotalVolunteerActivities > sorted[j].UserTotalVolunteerActivities
		default:
			return sorted[i].UserPoint > sorted[j].UserPoint
		}
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]LeaderboardEntry, 0, len(sorted))
	for i := range sorted {
		u := &sorted[i]
		entries = append(entries, LeaderboardEntry{
			Rank:                     i + 1,
			UserID:                   u.UserID,
			Name:                     u.UserName,
			Points:                   u.UserPoint,
			Level:                    gconfig.LevelFor(u.UserPoint),
			TotalDonations:           u.UserTotalDonations,
			TotalVolunteerActivities: u.UserTotalVolunteerActivities,
			AchievementsCount:        achievementCounts[u.UserID],
		})
	}
	return entries
}
