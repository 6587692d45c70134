package model

// LeaderboardEntry is one row of the balance-ordered leaderboard view
type LeaderboardEntry struct {
	Handle     string `json:"handle"`
	Balance    int64  `json:"balance"`
	Level      int    `json:"level"`
	Experience int64  `json:"experience"`
}
