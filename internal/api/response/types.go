package response

import (
	"time"

	"github.com/luxlife/millionaire-go/internal/model"
)

// Account represents an account in API responses. The credential digest is
// never surfaced.
type Account struct {
	ID        string    `json:"id"`
	Handle    string    `json:"handle"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

// AccountFromModel converts a model.Account to a response Account
func AccountFromModel(a *model.Account) Account {
	return Account{
		ID:        string(a.ID),
		Handle:    a.Handle,
		Address:   a.Address,
		CreatedAt: a.CreatedAt,
		LastLogin: a.LastLogin,
	}
}

// Stats represents cumulative statistics in API responses
type Stats struct {
	TotalEarnings int64 `json:"total_earnings"`
	JobsCompleted int   `json:"jobs_completed"`
	CitiesVisited int   `json:"cities_visited"`
	CarsOwned     int   `json:"cars_owned"`
}

// Position represents a world position in API responses
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Progression represents a progression record in API responses
type Progression struct {
	AccountID        string   `json:"account_id"`
	Balance          int64    `json:"balance"`
	Experience       int64    `json:"experience"`
	Level            int      `json:"level"`
	CurrentCity      string   `json:"current_city"`
	CurrentVehicle   string   `json:"current_vehicle"`
	CurrentAvatar    string   `json:"current_avatar"`
	UnlockedVehicles []string `json:"unlocked_vehicles"`
	UnlockedAvatars  []string `json:"unlocked_avatars"`
	CompletedJobs    int      `json:"completed_jobs"`
	Position         Position `json:"position"`
	Properties       []string `json:"properties"`
	Achievements     []string `json:"achievements"`
	Stats            Stats    `json:"stats"`
}

// ProgressionFromModel converts a model.ProgressionRecord to a response
// Progression
func ProgressionFromModel(r *model.ProgressionRecord) Progression {
	return Progression{
		AccountID:        string(r.AccountID),
		Balance:          r.Balance,
		Experience:       r.Experience,
		Level:            r.Level,
		CurrentCity:      r.CurrentCity,
		CurrentVehicle:   r.CurrentVehicle,
		CurrentAvatar:    r.CurrentAvatar,
		UnlockedVehicles: r.UnlockedVehicles,
		UnlockedAvatars:  r.UnlockedAvatars,
		CompletedJobs:    r.CompletedJobs,
		Position:         Position{X: r.Position.X, Y: r.Position.Y, Z: r.Position.Z},
		Properties:       r.Properties,
		Achievements:     r.Achievements,
		Stats: Stats{
			TotalEarnings: r.Stats.TotalEarnings,
			JobsCompleted: r.Stats.JobsCompleted,
			CitiesVisited: r.Stats.CitiesVisited,
			CarsOwned:     r.Stats.CarsOwned,
		},
	}
}

// LeaderboardEntry represents one leaderboard row in API responses
type LeaderboardEntry struct {
	Handle     string `json:"handle"`
	Balance    int64  `json:"balance"`
	Level      int    `json:"level"`
	Experience int64  `json:"experience"`
}

// LeaderboardFromModel converts leaderboard entries
func LeaderboardFromModel(entries []model.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, LeaderboardEntry{
			Handle:     e.Handle,
			Balance:    e.Balance,
			Level:      e.Level,
			Experience: e.Experience,
		})
	}
	return out
}
