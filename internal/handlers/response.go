package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/solenbank/solen_backend/internal/apperrors"
	"github.com/solenbank/solen_backend/internal/middleware"
)

// respondError maps the error taxonomy to HTTP statuses. Anything outside the
// taxonomy is a store/internal failure and is surfaced generically so one
// broken operation cannot leak internals or corrupt others.
func respondError(c *gin.Context, err error) {
	respondErrorWith(c, err, nil)
}

// respondErrorWith is respondError with extra body fields, for responses that
// must carry more than the error itself.
func respondErrorWith(c *gin.Context, err error, extra gin.H) {
	body := gin.H{"error": err.Error()}
	var status int
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrProtectedResource):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Operation failed", slog.String("error", err.Error()))
		status = http.StatusInternalServerError
		body["error"] = "operation failed"
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondBindingError reports a malformed request body, naming the failing
// fields when the validator identified them.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// callerIdentity pulls the authenticated identity or aborts with 401.
func callerIdentity(c *gin.Context) (int64, bool) {
	identity, ok := middleware.GetIdentityFromCtx(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return identity, ok
}
