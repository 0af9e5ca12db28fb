package sessions

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/models"
	"github.com/savasana/yoga-web/internal/app/observability/metrics"
)

// DetailController shows one session and lets the current user toggle
// membership. Membership is always derived from the last server copy of the
// attendee set, never tracked as separate local state: every mutation is
// followed by a re-fetch so the view cannot drift from server truth.
type DetailController struct {
	sessionID int64
	api       SessionAPI
	teachers  TeacherDirectory
	auth      AuthState
	logger    *zap.Logger

	busy    atomic.Bool
	session *models.ClassSession
	teacher *models.Teacher
}

func NewDetailController(sessionID int64, api SessionAPI, teachers TeacherDirectory, auth AuthState, logger *zap.Logger) *DetailController {
	return &DetailController{
		sessionID: sessionID,
		api:       api,
		teachers:  teachers,
		auth:      auth,
		logger:    logger.With(zap.Int64("sessionID", sessionID)),
	}
}

// Activate fetches the session, then its teacher. Either fetch coming back
// not-found leaves the corresponding field absent instead of failing; the
// view must tolerate a missing session or teacher. Other failures propagate.
func (dc *DetailController) Activate(ctx context.Context) error {
	sess, err := dc.api.GetByID(ctx, dc.sessionID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			dc.session = nil
			dc.teacher = nil
			return nil
		}
		return err
	}
	dc.session = &sess
	return dc.resolveTeacher(ctx)
}

// resolveTeacher refreshes dc.teacher from the current session. An unknown
// teacher id clears the field instead of failing.
func (dc *DetailController) resolveTeacher(ctx context.Context) error {
	teacher, err := dc.teachers.ByID(ctx, dc.session.TeacherID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			dc.teacher = nil
			return nil
		}
		return err
	}
	dc.teacher = &teacher
	return nil
}

// Session returns the last fetched copy, or nil when the id was unknown.
func (dc *DetailController) Session() *models.ClassSession {
	return dc.session
}

// Teacher returns the session's teacher, or nil when unresolved.
func (dc *DetailController) Teacher() *models.Teacher {
	return dc.teacher
}

// IsParticipant derives the current user's membership from the attendee set
// of the last fetch.
func (dc *DetailController) IsParticipant() bool {
	userID, ok := dc.auth.UserID()
	return ok && dc.session != nil && dc.session.HasAttendee(userID)
}

// CanDelete reports whether the delete control is rendered.
func (dc *DetailController) CanDelete() bool {
	return dc.auth.IsAdmin()
}

// Participate joins the current user to the session, then re-fetches it so
// the attendee set reflects the server's new truth. The re-fetch is issued
// only after the mutation's response arrives.
func (dc *DetailController) Participate(ctx context.Context) error {
	return dc.toggle(ctx, true)
}

// UnParticipate is the mirror operation, with the same re-fetch contract.
func (dc *DetailController) UnParticipate(ctx context.Context) error {
	return dc.toggle(ctx, false)
}

func (dc *DetailController) toggle(ctx context.Context, join bool) error {
	userID, ok := dc.auth.UserID()
	if !ok {
		return models.ErrNotAuthenticated
	}
	if !dc.busy.CompareAndSwap(false, true) {
		return models.ErrRequestInFlight
	}
	defer dc.busy.Store(false)

	var err error
	if join {
		err = dc.api.Participate(ctx, dc.sessionID, userID)
	} else {
		err = dc.api.UnParticipate(ctx, dc.sessionID, userID)
	}
	if err != nil {
		dc.logger.Warn("Participation toggle failed",
			zap.Bool("join", join), zap.Error(err))
		return err
	}
	metrics.RecordParticipationToggle(ctx, join)

	sess, err := dc.api.GetByID(ctx, dc.sessionID)
	if err != nil {
		// The mutation succeeded; a failed resync still surfaces so the
		// view does not keep showing the pre-mutation attendee set.
		return errors.Wrap(err, "resync after participation toggle")
	}
	dc.session = &sess
	return dc.resolveTeacher(ctx)
}

// Delete removes the session. Admin only; the handler navigates back to the
// list on success.
func (dc *DetailController) Delete(ctx context.Context) error {
	if !dc.auth.IsAdmin() {
		return models.ErrForbidden
	}
	if !dc.busy.CompareAndSwap(false, true) {
		return models.ErrRequestInFlight
	}
	defer dc.busy.Store(false)

	if err := dc.api.Delete(ctx, dc.sessionID); err != nil {
		dc.logger.Warn("Session delete failed", zap.Error(err))
		return err
	}
	dc.logger.Info("Session deleted")
	return nil
}
