package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luxlife/millionaire-go/internal/api/apierr"
	"github.com/luxlife/millionaire-go/internal/api/middleware"
	"github.com/luxlife/millionaire-go/internal/api/request"
	"github.com/luxlife/millionaire-go/internal/api/response"
	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/services/economy"
)

// EconomyHandler handles the in-game economic action endpoints
type EconomyHandler struct {
	economyService *economy.Service
}

// NewEconomyHandler creates a new economy handler
func NewEconomyHandler(economyService *economy.Service) *EconomyHandler {
	return &EconomyHandler{
		economyService: economyService,
	}
}

// CompleteJob handles POST /api/v1/game/jobs
func (h *EconomyHandler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.CompleteJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.economyService.CompleteJob(r.Context(), account.ID, req.Earnings)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// BuyVehicle handles POST /api/v1/garage/buy
func (h *EconomyHandler) BuyVehicle(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.BuyVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.VehicleID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("vehicle_id is required"))
		return
	}

	record, err := h.economyService.BuyVehicle(r.Context(), account.ID, req.VehicleID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// SelectVehicle handles POST /api/v1/garage/select
func (h *EconomyHandler) SelectVehicle(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.SelectVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.VehicleID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("vehicle_id is required"))
		return
	}

	record, err := h.economyService.SelectVehicle(r.Context(), account.ID, req.VehicleID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// BuyAvatar handles POST /api/v1/avatars/buy
func (h *EconomyHandler) BuyAvatar(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.BuyAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.AvatarID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("avatar_id is required"))
		return
	}

	record, err := h.economyService.BuyAvatar(r.Context(), account.ID, req.AvatarID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// SelectAvatar handles POST /api/v1/avatars/select
func (h *EconomyHandler) SelectAvatar(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.SelectAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.AvatarID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("avatar_id is required"))
		return
	}

	record, err := h.economyService.SelectAvatar(r.Context(), account.ID, req.AvatarID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// Travel handles POST /api/v1/travel
func (h *EconomyHandler) Travel(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.TravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.CityID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("city_id is required"))
		return
	}

	record, err := h.economyService.Travel(r.Context(), account.ID, req.CityID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// BuyShopItem handles POST /api/v1/shop/buy
func (h *EconomyHandler) BuyShopItem(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.ShopPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ItemID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("item_id is required"))
		return
	}

	record, err := h.economyService.BuyShopItem(r.Context(), account.ID, req.ItemID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// UpdatePosition handles PUT /api/v1/game/position
func (h *EconomyHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	var req request.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.economyService.UpdatePosition(r.Context(), account.ID, model.Position{X: req.X, Y: req.Y, Z: req.Z})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// GetCatalog handles GET /api/v1/catalog
func (h *EconomyHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat := h.economyService.Catalog()
	response.JSON(w, http.StatusOK, map[string]any{
		"vehicles":   cat.Vehicles,
		"cities":     cat.Cities,
		"avatars":    cat.Avatars,
		"shop_items": cat.ShopItems,
	})
}
