package sessions

import (
	"context"

	"github.com/savasana/yoga-web/internal/app/models"
)

// SessionAPI is the slice of the resource client the controllers drive.
// *api.SessionClient satisfies it.
type SessionAPI interface {
	ListAll(ctx context.Context) ([]models.ClassSession, error)
	GetByID(ctx context.Context, id int64) (models.ClassSession, error)
	Create(ctx context.Context, draft models.SessionDraft) (models.ClassSession, error)
	Update(ctx context.Context, id int64, draft models.SessionDraft) (models.ClassSession, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, sessionID, userID int64) error
	UnParticipate(ctx context.Context, sessionID, userID int64) error
}

// TeacherDirectory resolves teacher reference data for the views.
// *directory.TeacherDirectory satisfies it.
type TeacherDirectory interface {
	All(ctx context.Context) ([]models.Teacher, error)
	ByID(ctx context.Context, id int64) (models.Teacher, error)
}

// AuthState is the read-only view of the session store the controllers
// consult. Controllers never mutate the store.
type AuthState interface {
	Current() (models.AuthSession, bool)
	UserID() (int64, bool)
	IsAdmin() bool
}
