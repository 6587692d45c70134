package handler

import (
	"net/http"

	"github.com/luxlife/millionaire-go/internal/api/apierr"
	"github.com/luxlife/millionaire-go/internal/api/middleware"
	"github.com/luxlife/millionaire-go/internal/api/response"
	"github.com/luxlife/millionaire-go/internal/services/progression"
)

// ProgressionHandler handles progression and leaderboard endpoints
type ProgressionHandler struct {
	progressionService *progression.Service
}

// NewProgressionHandler creates a new progression handler
func NewProgressionHandler(progressionService *progression.Service) *ProgressionHandler {
	return &ProgressionHandler{
		progressionService: progressionService,
	}
}

// Get handles GET /api/v1/progression
func (h *ProgressionHandler) Get(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())

	record, err := h.progressionService.Fetch(r.Context(), account.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressionFromModel(record))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *ProgressionHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.progressionService.Leaderboard(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}
