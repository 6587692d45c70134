package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/luxlife/millionaire-go/internal/api/handler"
	"github.com/luxlife/millionaire-go/internal/api/middleware"
	"github.com/luxlife/millionaire-go/internal/services/directory"
	"github.com/luxlife/millionaire-go/internal/services/economy"
	"github.com/luxlife/millionaire-go/internal/services/progression"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	DirectoryService   *directory.Service
	ProgressionService *progression.Service
	EconomyService     *economy.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.DirectoryService)
	progressionHandler := handler.NewProgressionHandler(cfg.ProgressionService)
	economyHandler := handler.NewEconomyHandler(cfg.EconomyService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.DirectoryService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for registering/logging in)
	api.HandleFunc("/accounts/register", accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/accounts/login", accountHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/accounts/logout", accountHandler.Logout).Methods(http.MethodPost)

	// Catalog and leaderboard are readable without a session
	api.HandleFunc("/catalog", economyHandler.GetCatalog).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", progressionHandler.Leaderboard).Methods(http.MethodGet)

	// Protected routes (require the active session)
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/accounts/me", accountHandler.GetMe).Methods(http.MethodGet)
	protected.HandleFunc("/progression", progressionHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/game/jobs", economyHandler.CompleteJob).Methods(http.MethodPost)
	protected.HandleFunc("/game/position", economyHandler.UpdatePosition).Methods(http.MethodPut)
	protected.HandleFunc("/garage/buy", economyHandler.BuyVehicle).Methods(http.MethodPost)
	protected.HandleFunc("/garage/select", economyHandler.SelectVehicle).Methods(http.MethodPost)
	protected.HandleFunc("/avatars/buy", economyHandler.BuyAvatar).Methods(http.MethodPost)
	protected.HandleFunc("/avatars/select", economyHandler.SelectAvatar).Methods(http.MethodPost)
	protected.HandleFunc("/travel", economyHandler.Travel).Methods(http.MethodPost)
	protected.HandleFunc("/shop/buy", economyHandler.BuyShopItem).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
