package sessions

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/domain"
	"github.com/savasana/yoga-web/internal/app/models"
)

// Handler adapts the session controllers to HTTP. A fresh controller is
// constructed per navigation, with its mode and identifiers derived once
// from the resolved route.
type Handler struct {
	*domain.BaseHandler
	api      SessionAPI
	teachers TeacherDirectory
	auth     AuthState
}

func NewHandler(base *domain.BaseHandler, api SessionAPI, teachers TeacherDirectory, auth AuthState) *Handler {
	return &Handler{BaseHandler: base, api: api, teachers: teachers, auth: auth}
}

// List renders the session list view.
func (h *Handler) List(c *gin.Context) {
	lc := NewListController(h.api, h.teachers, h.auth, h.Logger)
	view, err := lc.Activate(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Detail renders one session. A missing session or teacher renders as null
// rather than an error page.
func (h *Handler) Detail(c *gin.Context) {
	dc, ok := h.detailController(c)
	if !ok {
		return
	}
	if err := dc.Activate(c.Request.Context()); err != nil {
		h.RespondError(c, err)
		return
	}
	h.renderDetail(c, dc)
}

// Participate joins the current user, re-syncs, and renders the fresh view.
func (h *Handler) Participate(c *gin.Context) {
	h.toggle(c, (*DetailController).Participate)
}

// UnParticipate removes the current user, re-syncs, and renders the fresh view.
func (h *Handler) UnParticipate(c *gin.Context) {
	h.toggle(c, (*DetailController).UnParticipate)
}

// Delete removes the session and navigates back to the list.
func (h *Handler) Delete(c *gin.Context) {
	dc, ok := h.detailController(c)
	if !ok {
		return
	}
	if err := dc.Delete(c.Request.Context()); err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted !", "redirect": "/sessions"})
}

// CreateForm renders the empty create form.
func (h *Handler) CreateForm(c *gin.Context) {
	h.renderForm(c, ModeCreate, 0)
}

// UpdateForm renders the form pre-populated from the routed session.
func (h *Handler) UpdateForm(c *gin.Context) {
	id, ok := h.routeID(c)
	if !ok {
		return
	}
	h.renderForm(c, ModeUpdate, id)
}

// SubmitCreate creates a session from the posted draft.
func (h *Handler) SubmitCreate(c *gin.Context) {
	h.submit(c, ModeCreate, 0)
}

// SubmitUpdate replaces the routed session with the posted draft.
func (h *Handler) SubmitUpdate(c *gin.Context) {
	id, ok := h.routeID(c)
	if !ok {
		return
	}
	h.submit(c, ModeUpdate, id)
}

func (h *Handler) renderForm(c *gin.Context, mode FormMode, id int64) {
	fc, err := NewFormController(mode, id, h.api, h.teachers, h.auth, h.Logger)
	if err != nil {
		// Not admin: redirect to the list without rendering the form.
		c.Redirect(http.StatusFound, "/sessions")
		c.Abort()
		return
	}
	ctx := c.Request.Context()
	if err := fc.Activate(ctx); err != nil {
		h.RespondError(c, err)
		return
	}
	teachers, err := fc.TeacherOptions(ctx)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mode":     fc.Mode().String(),
		"draft":    fc.Draft(),
		"teachers": teachers,
	})
}

func (h *Handler) submit(c *gin.Context, mode FormMode, id int64) {
	fc, err := NewFormController(mode, id, h.api, h.teachers, h.auth, h.Logger)
	if err != nil {
		c.Redirect(http.StatusFound, "/sessions")
		c.Abort()
		return
	}

	var draft models.SessionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.RespondError(c, models.ErrValidation)
		return
	}

	if _, err := fc.Submit(c.Request.Context(), draft); err != nil {
		h.RespondError(c, err)
		return
	}
	status := http.StatusOK
	if mode == ModeCreate {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": fc.SuccessMessage(), "redirect": "/sessions"})
}

func (h *Handler) toggle(c *gin.Context, op func(*DetailController, context.Context) error) {
	dc, ok := h.detailController(c)
	if !ok {
		return
	}
	if err := op(dc, c.Request.Context()); err != nil {
		h.RespondError(c, err)
		return
	}
	h.renderDetail(c, dc)
}

func (h *Handler) renderDetail(c *gin.Context, dc *DetailController) {
	c.JSON(http.StatusOK, gin.H{
		"session":       dc.Session(),
		"teacher":       dc.Teacher(),
		"isParticipant": dc.IsParticipant(),
		"canDelete":     dc.CanDelete(),
	})
}

func (h *Handler) detailController(c *gin.Context) (*DetailController, bool) {
	id, ok := h.routeID(c)
	if !ok {
		return nil, false
	}
	return NewDetailController(id, h.api, h.teachers, h.auth, h.Logger), true
}

func (h *Handler) routeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.Logger.Debug("Malformed session id in route", zap.String("id", c.Param("id")))
		c.Redirect(http.StatusFound, "/404")
		c.Abort()
		return 0, false
	}
	return id, true
}
