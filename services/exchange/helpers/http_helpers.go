package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"rewear/internal/exchangeerrors"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ActorIDKey   = "actor_id"
	ActorRoleKey = "actor_role"
)

// ActorID returns the authenticated actor's user ID from the request
// context. Empty when the route skipped the auth middleware.
func ActorID(c *gin.Context) string {
	return c.GetString(ActorIDKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps a service error to its HTTP response and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, ctx)
	} else {
		utils.Warn(handlerName+": "+message, ctx)
	}
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, exchangeerrors.ErrValidation):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, exchangeerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, exchangeerrors.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized"
	case errors.Is(err, exchangeerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, exchangeerrors.ErrSwapNotFound):
		return http.StatusNotFound, "swap not found"
	case errors.Is(err, exchangeerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, exchangeerrors.ErrEmailTaken):
		return http.StatusConflict, "user already exists with this email"
	case errors.Is(err, exchangeerrors.ErrItemNotAvailable):
		return http.StatusConflict, "item is not available for swap"
	case errors.Is(err, exchangeerrors.ErrSwapNotPending):
		return http.StatusConflict, "swap is no longer pending"
	case errors.Is(err, exchangeerrors.ErrInvalidState):
		return http.StatusConflict, "item state does not allow this action"
	case errors.Is(err, exchangeerrors.ErrOwnerCannotSwap):
		return http.StatusBadRequest, "cannot swap your own item"
	case errors.Is(err, exchangeerrors.ErrInvalidOfferedItem):
		return http.StatusBadRequest, "invalid offered item"
	case errors.Is(err, exchangeerrors.ErrInsufficientPoints):
		return http.StatusBadRequest, "insufficient points for this swap"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
