package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/domain"
	"github.com/savasana/yoga-web/internal/app/models"
)

// AuthAPI is the slice of the resource client the handlers use.
// *api.AuthClient satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (models.AuthSession, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

// SessionWriter is the only place outside logout where the store is mutated.
// *session.Store satisfies it.
type SessionWriter interface {
	LogIn(sess models.AuthSession)
	LogOut()
}

type Handler struct {
	*domain.BaseHandler
	api   AuthAPI
	store SessionWriter
}

func NewHandler(base *domain.BaseHandler, api AuthAPI, store SessionWriter) *Handler {
	return &Handler{BaseHandler: base, api: api, store: store}
}

// LoginForm renders the empty login form.
func (h *Handler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": "login", "draft": models.LoginRequest{}})
}

// RegisterForm renders the empty register form.
func (h *Handler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": "register", "draft": models.RegisterRequest{}})
}

// Login exchanges the posted credentials for an AuthSession, stores it, and
// navigates to the session list. A rejected login surfaces as a 401 and
// leaves the store untouched, so the user stays on the form.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondError(c, models.ErrValidation)
		return
	}

	sess, err := h.api.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.store.LogIn(sess)
	h.Logger.Info("User logged in", zap.Int64("userID", sess.UserID))
	c.JSON(http.StatusOK, gin.H{"redirect": "/sessions"})
}

// Register creates an account and navigates to the login form. Failures
// (including duplicate email) keep the user on the register form.
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondError(c, models.ErrValidation)
		return
	}

	if err := h.api.Register(c.Request.Context(), req); err != nil {
		h.RespondError(c, err)
		return
	}

	h.Logger.Info("User registered", zap.String("email", req.Email))
	c.JSON(http.StatusCreated, gin.H{"redirect": "/login"})
}

// Logout clears the store and navigates home. There is no backend call: the
// session lives only in this process.
func (h *Handler) Logout(c *gin.Context) {
	h.store.LogOut()
	c.Redirect(http.StatusFound, "/")
}
