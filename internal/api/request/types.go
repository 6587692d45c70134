package request

// RegisterRequest is the request body for POST /accounts/register
type RegisterRequest struct {
	Handle   string `json:"handle"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// LoginRequest is the request body for POST /accounts/login
type LoginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

// CompleteJobRequest is the request body for POST /game/jobs
type CompleteJobRequest struct {
	Earnings int64 `json:"earnings"`
}

// BuyVehicleRequest is the request body for POST /garage/buy
type BuyVehicleRequest struct {
	VehicleID string `json:"vehicle_id"`
}

// SelectVehicleRequest is the request body for POST /garage/select
type SelectVehicleRequest struct {
	VehicleID string `json:"vehicle_id"`
}

// BuyAvatarRequest is the request body for POST /avatars/buy
type BuyAvatarRequest struct {
	AvatarID string `json:"avatar_id"`
}

// SelectAvatarRequest is the request body for POST /avatars/select
type SelectAvatarRequest struct {
	AvatarID string `json:"avatar_id"`
}

// TravelRequest is the request body for POST /travel
type TravelRequest struct {
	CityID string `json:"city_id"`
}

// ShopPurchaseRequest is the request body for POST /shop/buy
type ShopPurchaseRequest struct {
	ItemID string `json:"item_id"`
}

// PositionRequest is the request body for PUT /game/position
type PositionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
