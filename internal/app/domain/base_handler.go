package domain

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/models"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

// RespondError maps a domain error onto the HTTP surface. Controllers never
// retry; every failure becomes a user-visible error payload here, and the
// view's optimistic state stays untouched.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthenticated), errors.Is(err, models.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrRequestInFlight):
		status = http.StatusConflict
	case errors.Is(err, models.ErrServerFault):
		status = http.StatusBadGateway
	case errors.Is(err, models.ErrNetwork):
		status = http.StatusServiceUnavailable
	}

	h.Logger.Warn("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
