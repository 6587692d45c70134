package model

// Stats are cumulative statistics maintained by caller-supplied replacement,
// not derived from the canonical fields. CarsOwned may drift from
// len(UnlockedVehicles) and CitiesVisited is only ever incremented; the store
// never recomputes either.
type Stats struct {
	TotalEarnings int64 `json:"total_earnings"`
	JobsCompleted int   `json:"jobs_completed"`
	CitiesVisited int   `json:"cities_visited"`
	CarsOwned     int   `json:"cars_owned"`
}

// Position is the player's location in the game world
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ProgressionRecord is the mutable game-state ledger for one account.
// Exactly one exists per account, created with the account and never deleted
// independently of it.
type ProgressionRecord struct {
	AccountID        AccountID `json:"account_id"`
	Balance          int64     `json:"balance"` // non-negative by game rule, not enforced here
	Experience       int64     `json:"experience"`
	Level            int       `json:"level"`
	CurrentCity      string    `json:"current_city"`
	CurrentVehicle   string    `json:"current_vehicle"`
	CurrentAvatar    string    `json:"current_avatar"`
	UnlockedVehicles []string  `json:"unlocked_vehicles"`
	UnlockedAvatars  []string  `json:"unlocked_avatars"`
	CompletedJobs    int       `json:"completed_jobs"`
	Position         Position  `json:"position"`
	Properties       []string  `json:"properties"`
	Achievements     []string  `json:"achievements"`
	Stats            Stats     `json:"stats"`
	Version          int64     `json:"version"` // storage compare-and-set counter
}

// LevelForExperience computes the level implied by an experience total
func LevelForExperience(xp int64) int {
	return int(xp/1000) + 1
}

// HasVehicle reports whether the vehicle id is in the unlocked set
func (r *ProgressionRecord) HasVehicle(id string) bool {
	return contains(r.UnlockedVehicles, id)
}

// HasAvatar reports whether the avatar id is in the unlocked set
func (r *ProgressionRecord) HasAvatar(id string) bool {
	return contains(r.UnlockedAvatars, id)
}

// Clone returns a deep copy of the record
func (r *ProgressionRecord) Clone() *ProgressionRecord {
	c := *r
	c.UnlockedVehicles = append([]string(nil), r.UnlockedVehicles...)
	c.UnlockedAvatars = append([]string(nil), r.UnlockedAvatars...)
	c.Properties = append([]string(nil), r.Properties...)
	c.Achievements = append([]string(nil), r.Achievements...)
	return &c
}

// Patch is a sparse set of field values merged into a ProgressionRecord.
// Set fields replace the current value, Add fields are applied as deltas,
// Unlock/Add-list fields append (unlocks are idempotent). Stats is a full
// replacement of the nested structure; the merge is not recursive past one
// level.
type Patch struct {
	Balance       *int64
	AddBalance    *int64
	Experience    *int64
	AddExperience *int64
	Level         *int

	CurrentCity    *string
	CurrentVehicle *string
	CurrentAvatar  *string

	UnlockVehicles []string
	UnlockAvatars  []string

	CompletedJobs    *int
	AddCompletedJobs *int

	Position *Position

	AddProperties   []string
	AddAchievements []string

	Stats *Stats
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.Balance == nil && p.AddBalance == nil &&
		p.Experience == nil && p.AddExperience == nil &&
		p.Level == nil &&
		p.CurrentCity == nil && p.CurrentVehicle == nil && p.CurrentAvatar == nil &&
		len(p.UnlockVehicles) == 0 && len(p.UnlockAvatars) == 0 &&
		p.CompletedJobs == nil && p.AddCompletedJobs == nil &&
		p.Position == nil &&
		len(p.AddProperties) == 0 && len(p.AddAchievements) == 0 &&
		p.Stats == nil
}

// Apply merges the patch into the record in place
func (p Patch) Apply(r *ProgressionRecord) {
	if p.Balance != nil {
		r.Balance = *p.Balance
	}
	if p.AddBalance != nil {
		r.Balance += *p.AddBalance
	}
	if p.Experience != nil {
		r.Experience = *p.Experience
	}
	if p.AddExperience != nil {
		r.Experience += *p.AddExperience
	}
	if p.Level != nil {
		r.Level = *p.Level
	}
	if p.CurrentCity != nil {
		r.CurrentCity = *p.CurrentCity
	}
	if p.CurrentVehicle != nil {
		r.CurrentVehicle = *p.CurrentVehicle
	}
	if p.CurrentAvatar != nil {
		r.CurrentAvatar = *p.CurrentAvatar
	}
	for _, id := range p.UnlockVehicles {
		if !contains(r.UnlockedVehicles, id) {
			r.UnlockedVehicles = append(r.UnlockedVehicles, id)
		}
	}
	for _, id := range p.UnlockAvatars {
		if !contains(r.UnlockedAvatars, id) {
			r.UnlockedAvatars = append(r.UnlockedAvatars, id)
		}
	}
	if p.CompletedJobs != nil {
		r.CompletedJobs = *p.CompletedJobs
	}
	if p.AddCompletedJobs != nil {
		r.CompletedJobs += *p.AddCompletedJobs
	}
	if p.Position != nil {
		r.Position = *p.Position
	}
	r.Properties = append(r.Properties, p.AddProperties...)
	r.Achievements = append(r.Achievements, p.AddAchievements...)
	if p.Stats != nil {
		r.Stats = *p.Stats
	}
}

func contains(set []string, id string) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}
