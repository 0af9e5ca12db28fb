package sessions

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/models"
)

// FormMode selects the form controller's state machine once, at
// construction. The caller derives it from the resolved route; the
// controller never re-inspects ambient location state.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeUpdate
)

func (m FormMode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

// FormController drives the create/update session form. Constructing it
// without the admin role fails with models.ErrForbidden so the caller can
// redirect before the form ever renders; the route guard normally catches
// this earlier, but the check here does not depend on the wiring.
type FormController struct {
	mode      FormMode
	sessionID int64
	api       SessionAPI
	teachers  TeacherDirectory
	auth      AuthState
	logger    *zap.Logger

	inFlight atomic.Bool
	draft    models.SessionDraft
}

// NewFormController builds a controller in the given mode. sessionID is the
// route identifier segment and is only meaningful in ModeUpdate.
func NewFormController(mode FormMode, sessionID int64, api SessionAPI, teachers TeacherDirectory, auth AuthState, logger *zap.Logger) (*FormController, error) {
	if !auth.IsAdmin() {
		return nil, models.ErrForbidden
	}
	return &FormController{
		mode:      mode,
		sessionID: sessionID,
		api:       api,
		teachers:  teachers,
		auth:      auth,
		logger:    logger.With(zap.Stringer("mode", mode)),
	}, nil
}

// Activate sets the initial draft: empty in ModeCreate, pre-populated from
// the existing session in ModeUpdate.
func (fc *FormController) Activate(ctx context.Context) error {
	if fc.mode == ModeCreate {
		fc.draft = models.SessionDraft{}
		return nil
	}

	sess, err := fc.api.GetByID(ctx, fc.sessionID)
	if err != nil {
		return errors.Wrap(err, "load session for update")
	}
	fc.draft = models.SessionDraft{
		Name:        sess.Name,
		Description: sess.Description,
		Date:        sess.Date,
		TeacherID:   sess.TeacherID,
	}
	return nil
}

func (fc *FormController) Mode() FormMode {
	return fc.mode
}

// Draft returns the current form draft.
func (fc *FormController) Draft() models.SessionDraft {
	return fc.draft
}

// TeacherOptions lists the teachers offered by the form's select control.
func (fc *FormController) TeacherOptions(ctx context.Context) ([]models.Teacher, error) {
	return fc.teachers.All(ctx)
}

// Submit sends the draft upstream. It refuses incomplete drafts with
// models.ErrValidation and refuses to overlap with an in-flight submit on
// the same controller instance (models.ErrRequestInFlight). On failure the
// draft stays populated for retry.
func (fc *FormController) Submit(ctx context.Context, draft models.SessionDraft) (models.ClassSession, error) {
	if !draft.Complete() {
		return models.ClassSession{}, errors.Wrap(models.ErrValidation, "draft is missing required fields")
	}
	if !fc.inFlight.CompareAndSwap(false, true) {
		return models.ClassSession{}, models.ErrRequestInFlight
	}
	defer fc.inFlight.Store(false)

	fc.draft = draft

	var (
		sess models.ClassSession
		err  error
	)
	if fc.mode == ModeUpdate {
		sess, err = fc.api.Update(ctx, fc.sessionID, draft)
	} else {
		sess, err = fc.api.Create(ctx, draft)
	}
	if err != nil {
		fc.logger.Warn("Form submit failed", zap.Error(err))
		return models.ClassSession{}, err
	}

	fc.logger.Info("Form submitted", zap.Int64("sessionID", sess.ID))
	return sess, nil
}

// SuccessMessage is the confirmation shown after a successful submit,
// distinct per mode.
func (fc *FormController) SuccessMessage() string {
	if fc.mode == ModeUpdate {
		return "Session updated !"
	}
	return "Session created !"
}
