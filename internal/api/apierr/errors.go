package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luxlife/millionaire-go/internal/model"
	"github.com/luxlife/millionaire-go/internal/services/directory"
	"github.com/luxlife/millionaire-go/internal/services/economy"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeDuplicateUser        = "DUPLICATE_USER"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeInvalidRegistration  = "INVALID_REGISTRATION"
	CodeProgressionNotFound  = "PROGRESSION_NOT_FOUND"
	CodeAlreadyInitialized   = "ALREADY_INITIALIZED"
	CodeUpdateConflict       = "UPDATE_CONFLICT"
	CodeStorageUnavailable   = "STORAGE_UNAVAILABLE"
	CodeUnknownItem          = "UNKNOWN_ITEM"
	CodeInsufficientFunds    = "INSUFFICIENT_FUNDS"
	CodeAlreadyUnlocked      = "ALREADY_UNLOCKED"
	CodeNotUnlocked          = "NOT_UNLOCKED"
	CodeAlreadyAtDestination = "ALREADY_AT_DESTINATION"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Directory errors
	case errors.Is(err, directory.ErrDuplicateUser):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateUser, "Handle or address already registered"}}
	case errors.Is(err, directory.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid handle or password"}}
	case errors.Is(err, directory.ErrHandleTooShort),
		errors.Is(err, directory.ErrPasswordTooShort),
		errors.Is(err, directory.ErrInvalidAddress):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRegistration, err.Error()}}

	// Progression errors
	case errors.Is(err, model.ErrProgressionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProgressionNotFound, "Progression record not found"}}
	case errors.Is(err, model.ErrProgressionExists):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInitialized, "Progression record already initialized"}}
	case errors.Is(err, model.ErrUpdateConflict):
		return &httpError{http.StatusConflict, APIError{CodeUpdateConflict, "Concurrent update conflict"}}
	case errors.Is(err, model.ErrStorageUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStorageUnavailable, "Storage unavailable"}}

	// Economy errors
	case errors.Is(err, economy.ErrUnknownItem):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownItem, "Unknown catalog id"}}
	case errors.Is(err, economy.ErrInsufficientFunds):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientFunds, "Insufficient funds"}}
	case errors.Is(err, economy.ErrAlreadyUnlocked):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyUnlocked, "Item already unlocked"}}
	case errors.Is(err, economy.ErrNotUnlocked):
		return &httpError{http.StatusConflict, APIError{CodeNotUnlocked, "Item not unlocked"}}
	case errors.Is(err, economy.ErrAlreadyAtDestination):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyAtDestination, "Already in this city"}}
	case errors.Is(err, economy.ErrInvalidEarnings):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Earnings must be positive"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
