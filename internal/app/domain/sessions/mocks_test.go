package sessions

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/savasana/yoga-web/internal/app/models"
)

// MockSessionAPI is a mock implementation of the SessionAPI interface.
type MockSessionAPI struct {
	mock.Mock
}

func (m *MockSessionAPI) ListAll(ctx context.Context) ([]models.ClassSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClassSession), args.Error(1)
}

func (m *MockSessionAPI) GetByID(ctx context.Context, id int64) (models.ClassSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ClassSession), args.Error(1)
}

func (m *MockSessionAPI) Create(ctx context.Context, draft models.SessionDraft) (models.ClassSession, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(models.ClassSession), args.Error(1)
}

func (m *MockSessionAPI) Update(ctx context.Context, id int64, draft models.SessionDraft) (models.ClassSession, error) {
	args := m.Called(ctx, id, draft)
	return args.Get(0).(models.ClassSession), args.Error(1)
}

func (m *MockSessionAPI) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionAPI) Participate(ctx context.Context, sessionID, userID int64) error {
	args := m.Called(ctx, sessionID, userID)
	return args.Error(0)
}

func (m *MockSessionAPI) UnParticipate(ctx context.Context, sessionID, userID int64) error {
	args := m.Called(ctx, sessionID, userID)
	return args.Error(0)
}

// MockTeacherDirectory is a mock implementation of the TeacherDirectory
// interface.
type MockTeacherDirectory struct {
	mock.Mock
}

func (m *MockTeacherDirectory) All(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *MockTeacherDirectory) ByID(ctx context.Context, id int64) (models.Teacher, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Teacher), args.Error(1)
}

// fakeAuth is a read-only stand-in for the session store.
type fakeAuth struct {
	sess *models.AuthSession
}

func (f *fakeAuth) Current() (models.AuthSession, bool) {
	if f.sess == nil {
		return models.AuthSession{}, false
	}
	return *f.sess, true
}

func (f *fakeAuth) UserID() (int64, bool) {
	if f.sess == nil {
		return 0, false
	}
	return f.sess.UserID, true
}

func (f *fakeAuth) IsAdmin() bool {
	return f.sess != nil && f.sess.Admin
}

func loggedIn(userID int64, admin bool) *fakeAuth {
	return &fakeAuth{sess: &models.AuthSession{UserID: userID, Admin: admin}}
}

func loggedOut() *fakeAuth {
	return &fakeAuth{}
}
