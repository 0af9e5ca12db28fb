package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/domain"
	"github.com/savasana/yoga-web/internal/app/models"
)

// UserAPI is the slice of the resource client the account view uses.
// *api.UserClient satisfies it.
type UserAPI interface {
	GetByID(ctx context.Context, id int64) (models.UserAccount, error)
	Delete(ctx context.Context, id int64) error
}

// SessionStore is what the account view needs from the auth store.
// *session.Store satisfies it.
type SessionStore interface {
	UserID() (int64, bool)
	LogOut()
}

type Handler struct {
	*domain.BaseHandler
	api   UserAPI
	store SessionStore
}

func NewHandler(base *domain.BaseHandler, api UserAPI, store SessionStore) *Handler {
	return &Handler{BaseHandler: base, api: api, store: store}
}

// Me renders the current user's account.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := h.store.UserID()
	if !ok {
		h.RespondError(c, models.ErrNotAuthenticated)
		return
	}

	account, err := h.api.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// DeleteAccount removes the current user's account server-side, then forces
// a logout and navigates home.
func (h *Handler) DeleteAccount(c *gin.Context) {
	userID, ok := h.store.UserID()
	if !ok {
		h.RespondError(c, models.ErrNotAuthenticated)
		return
	}

	if err := h.api.Delete(c.Request.Context(), userID); err != nil {
		h.RespondError(c, err)
		return
	}

	h.store.LogOut()
	h.Logger.Info("Account deleted", zap.Int64("userID", userID))
	c.JSON(http.StatusOK, gin.H{"message": "Your account has been deleted !", "redirect": "/"})
}
