package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case Progression:
		o.printProgression(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case Catalog:
		o.printCatalog(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Account response type (matches API)
type Account struct {
	ID        string    `json:"id"`
	Handle    string    `json:"handle"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

// Stats response type
type Stats struct {
	TotalEarnings int64 `json:"total_earnings"`
	JobsCompleted int   `json:"jobs_completed"`
	CitiesVisited int   `json:"cities_visited"`
	CarsOwned     int   `json:"cars_owned"`
}

// Position response type
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Progression response type
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

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Handle     string `json:"handle"`
	Balance    int64  `json:"balance"`
	Level      int    `json:"level"`
	Experience int64  `json:"experience"`
}

// CatalogVehicle response type
type CatalogVehicle struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price int64   `json:"price"`
	Speed float64 `json:"speed"`
}

// CatalogCity response type
type CatalogCity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int64  `json:"cost"`
}

// CatalogAvatar response type
type CatalogAvatar struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CatalogShopItem response type
type CatalogShopItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Amount    int64   `json:"amount"`
	RealPrice float64 `json:"real_price"`
}

// Catalog response type
type Catalog struct {
	Vehicles  []CatalogVehicle  `json:"vehicles"`
	Cities    []CatalogCity     `json:"cities"`
	Avatars   []CatalogAvatar   `json:"avatars"`
	ShopItems []CatalogShopItem `json:"shop_items"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAccount(a Account) {
	fmt.Printf("Account: %s (%s)\n", a.Handle, a.ID)
	fmt.Printf("Address: %s\n", a.Address)
	fmt.Printf("Created: %s\n", a.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Last Login: %s\n", a.LastLogin.Format(time.RFC3339))
}

func (o *Output) printProgression(p Progression) {
	fmt.Printf("Balance: $%d\n", p.Balance)
	fmt.Printf("Level: %d (%d XP)\n", p.Level, p.Experience)
	fmt.Printf("City: %s\n", p.CurrentCity)
	fmt.Printf("Vehicle: %s\n", p.CurrentVehicle)
	fmt.Printf("Avatar: %s\n", p.CurrentAvatar)
	fmt.Printf("Jobs Completed: %d\n", p.CompletedJobs)

	fmt.Printf("Garage (%d):\n", len(p.UnlockedVehicles))
	for _, v := range p.UnlockedVehicles {
		marker := ""
		if v == p.CurrentVehicle {
			marker = " [active]"
		}
		fmt.Printf("  - %s%s\n", v, marker)
	}

	fmt.Printf("Avatars (%d):\n", len(p.UnlockedAvatars))
	for _, a := range p.UnlockedAvatars {
		marker := ""
		if a == p.CurrentAvatar {
			marker = " [active]"
		}
		fmt.Printf("  - %s%s\n", a, marker)
	}

	if len(p.Properties) > 0 {
		fmt.Printf("Properties: %d\n", len(p.Properties))
		for _, prop := range p.Properties {
			fmt.Printf("  - %s\n", prop)
		}
	}

	if len(p.Achievements) > 0 {
		fmt.Printf("Achievements: %d\n", len(p.Achievements))
		for _, ach := range p.Achievements {
			fmt.Printf("  - %s\n", ach)
		}
	}

	fmt.Println("Stats:")
	fmt.Printf("  Total Earnings: $%d\n", p.Stats.TotalEarnings)
	fmt.Printf("  Jobs Completed: %d\n", p.Stats.JobsCompleted)
	fmt.Printf("  Cities Visited: %d\n", p.Stats.CitiesVisited)
	fmt.Printf("  Cars Owned: %d\n", p.Stats.CarsOwned)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries yet")
		return
	}

	fmt.Println("Leaderboard:")
	for i, e := range entries {
		fmt.Printf("  %d. %s - $%d (level %d, %d XP)\n", i+1, e.Handle, e.Balance, e.Level, e.Experience)
	}
}

func (o *Output) printCatalog(c Catalog) {
	fmt.Println("Vehicles:")
	for _, v := range c.Vehicles {
		fmt.Printf("  %s: %s - $%d (speed %.0f)\n", v.ID, v.Name, v.Price, v.Speed)
	}

	fmt.Println("Cities:")
	for _, city := range c.Cities {
		fmt.Printf("  %s: %s - $%d\n", city.ID, city.Name, city.Cost)
	}

	fmt.Println("Avatars:")
	for _, a := range c.Avatars {
		if a.Price == 0 {
			fmt.Printf("  %s: %s - free\n", a.ID, a.Name)
		} else {
			fmt.Printf("  %s: %s - $%d\n", a.ID, a.Name, a.Price)
		}
	}

	fmt.Println("Shop:")
	for _, item := range c.ShopItems {
		fmt.Printf("  %s: %s [%s]\n", item.ID, item.Name, item.Category)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
