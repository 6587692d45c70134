package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luxlife/millionaire-go/internal/api/apierr"
	"github.com/luxlife/millionaire-go/internal/api/middleware"
	"github.com/luxlife/millionaire-go/internal/api/request"
	"github.com/luxlife/millionaire-go/internal/api/response"
	"github.com/luxlife/millionaire-go/internal/services/directory"
)

// AccountHandler handles account and session endpoints
type AccountHandler struct {
	directoryService *directory.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(directoryService *directory.Service) *AccountHandler {
	return &AccountHandler{
		directoryService: directoryService,
	}
}

// Register handles POST /api/v1/accounts/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Handle == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("handle is required"))
		return
	}
	if req.Address == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("address is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	account, err := h.directoryService.Register(r.Context(), req.Handle, req.Address, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AccountFromModel(account))
}

// Login handles POST /api/v1/accounts/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Handle == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("handle and password are required"))
		return
	}

	account, err := h.directoryService.Authenticate(r.Context(), req.Handle, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountFromModel(account))
}

// Logout handles POST /api/v1/accounts/logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.directoryService.EndSession(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// GetMe handles GET /api/v1/accounts/me
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	account := middleware.MustGetAccount(r.Context())
	response.JSON(w, http.StatusOK, response.AccountFromModel(account))
}
