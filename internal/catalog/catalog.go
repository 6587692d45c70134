// Package catalog holds the static item catalogs the presentation layer
// defines: vehicles, cities, avatars and shop packages. The progression core
// treats catalog ids as opaque strings; this package is reference data used
// for validating unlock and selection operations.
package catalog

// Vehicle is a purchasable car
type Vehicle struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price int64   `json:"price"`
	Speed float64 `json:"speed"`
}

// City is a travel destination
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int64  `json:"cost"`
}

// Avatar is a selectable player persona. Free avatars have Price 0 and are
// unlocked from the start.
type Avatar struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Shop item categories
const (
	CategoryCash    = "cash"
	CategoryPremium = "premium"
	CategoryBoost   = "boost"
)

// ShopItem is a simulated-purchase shop package. Cash packs credit Amount to
// the balance; premium items grant a property; boosts adjust level/experience
// directly. RealPrice is the display-only EUR price (no payment integration).
type ShopItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Amount    int64   `json:"amount"`
	RealPrice float64 `json:"real_price"`
}

// Catalog bundles the static item lists
type Catalog struct {
	Vehicles  []Vehicle
	Cities    []City
	Avatars   []Avatar
	ShopItems []ShopItem
}

// Vehicle returns the vehicle with the given id, if present
func (c *Catalog) Vehicle(id string) (Vehicle, bool) {
	for _, v := range c.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

// City returns the city with the given id, if present
func (c *Catalog) City(id string) (City, bool) {
	for _, ct := range c.Cities {
		if ct.ID == id {
			return ct, true
		}
	}
	return City{}, false
}

// Avatar returns the avatar with the given id, if present
func (c *Catalog) Avatar(id string) (Avatar, bool) {
	for _, a := range c.Avatars {
		if a.ID == id {
			return a, true
		}
	}
	return Avatar{}, false
}

// ShopItem returns the shop item with the given id, if present
func (c *Catalog) ShopItem(id string) (ShopItem, bool) {
	for _, it := range c.ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// Default returns the catalogs shipped with the game
func Default() *Catalog {
	return &Catalog{
		Vehicles: []Vehicle{
			{ID: "basic", Name: "Basic Car", Price: 0, Speed: 1},
			{ID: "bmw", Name: "BMW M3", Price: 25000, Speed: 1.3},
			{ID: "lambo", Name: "Lamborghini Huracán", Price: 80000, Speed: 1.8},
			{ID: "rolls", Name: "Rolls Royce Phantom", Price: 180000, Speed: 1.5},
			{ID: "bugatti", Name: "Bugatti Chiron", Price: 250000, Speed: 2.5},
		},
		Cities: []City{
			{ID: "dubai", Name: "Dubai", Cost: 0},
			{ID: "milano", Name: "Milano", Cost: 15000},
			{ID: "paris", Name: "Paris", Cost: 20000},
			{ID: "tokyo", Name: "Tokyo", Cost: 35000},
			{ID: "newyork", Name: "New York", Cost: 40000},
			{ID: "monaco", Name: "Monaco", Cost: 60000},
		},
		Avatars: []Avatar{
			{ID: "businessman", Name: "Business Executive", Price: 0},
			{ID: "entrepreneur", Name: "Tech Entrepreneur", Price: 0},
			{ID: "luxury_woman", Name: "Luxury Lifestyle", Price: 0},
			{ID: "crypto_trader", Name: "Crypto Trader", Price: 50000},
			{ID: "fashion_mogul", Name: "Fashion Mogul", Price: 100000},
			{ID: "real_estate", Name: "Real Estate Tycoon", Price: 200000},
		},
		ShopItems: []ShopItem{
			{ID: "cash_starter", Name: "Starter Pack", Category: CategoryCash, Amount: 50000, RealPrice: 4.99},
			{ID: "cash_business", Name: "Business Pack", Category: CategoryCash, Amount: 200000, RealPrice: 14.99},
			{ID: "cash_millionaire", Name: "Millionaire Pack", Category: CategoryCash, Amount: 1000000, RealPrice: 49.99},
			{ID: "cash_tycoon", Name: "Tycoon Pack", Category: CategoryCash, Amount: 5000000, RealPrice: 99.99},
			{ID: "premium_vip", Name: "VIP Membership", Category: CategoryPremium, RealPrice: 9.99},
			{ID: "premium_penthouse", Name: "Luxury Penthouse", Category: CategoryPremium, RealPrice: 24.99},
			{ID: "boost_2x_earnings", Name: "2x Earnings Boost", Category: CategoryBoost, RealPrice: 2.99},
			{ID: "boost_instant_level", Name: "Instant Level Up", Category: CategoryBoost, RealPrice: 4.99},
		},
	}
}
