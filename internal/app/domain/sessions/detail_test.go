package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/models"
)

func detailFixture(attendees ...int64) models.ClassSession {
	return models.ClassSession{
		ID:              1,
		Name:            "Morning Flow",
		TeacherID:       3,
		AttendeeUserIDs: attendees,
	}
}

func TestDetailControllerActivate(t *testing.T) {
	ctx := context.Background()

	t.Run("loads session then teacher", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(2), nil)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{ID: 3, FirstName: "Margot", LastName: "DELAHAYE"}, nil)

		dc := NewDetailController(1, apiMock, dirMock, loggedIn(2, false), zap.NewNop())
		require.NoError(t, dc.Activate(ctx))

		require.NotNil(t, dc.Session())
		require.NotNil(t, dc.Teacher())
		assert.Equal(t, "Margot", dc.Teacher().FirstName)
	})

	t.Run("missing session leaves both fields absent without failing", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		apiMock.On("GetByID", ctx, int64(9)).Return(models.ClassSession{}, &notFoundErr{})

		dc := NewDetailController(9, apiMock, dirMock, loggedIn(2, false), zap.NewNop())
		require.NoError(t, dc.Activate(ctx))

		assert.Nil(t, dc.Session())
		assert.Nil(t, dc.Teacher())
		dirMock.AssertNotCalled(t, "ByID", mock.Anything, mock.Anything)
	})

	t.Run("missing teacher is tolerated", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(), nil)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{}, &notFoundErr{})

		dc := NewDetailController(1, apiMock, dirMock, loggedIn(2, false), zap.NewNop())
		require.NoError(t, dc.Activate(ctx))

		assert.NotNil(t, dc.Session())
		assert.Nil(t, dc.Teacher())
	})

	t.Run("other failures propagate", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		apiMock.On("GetByID", ctx, int64(1)).Return(models.ClassSession{}, &serverFaultErr{})

		dc := NewDetailController(1, apiMock, new(MockTeacherDirectory), loggedIn(2, false), zap.NewNop())
		assert.ErrorIs(t, dc.Activate(ctx), models.ErrServerFault)
	})
}

func TestDetailControllerMembership(t *testing.T) {
	ctx := context.Background()

	t.Run("membership is derived from the attendee set", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(2, 5), nil)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{ID: 3}, nil)

		member := NewDetailController(1, apiMock, dirMock, loggedIn(2, false), zap.NewNop())
		require.NoError(t, member.Activate(ctx))
		assert.True(t, member.IsParticipant())

		outsider := NewDetailController(1, apiMock, dirMock, loggedIn(7, false), zap.NewNop())
		require.NoError(t, outsider.Activate(ctx))
		assert.False(t, outsider.IsParticipant())
	})

	t.Run("participate re-fetches before updating the view", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{ID: 3}, nil)

		// First fetch: user 2 not a member. After the toggle the server's
		// truth includes both attendees.
		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(1), nil).Once()
		apiMock.On("Participate", ctx, int64(1), int64(2)).Return(nil).Once()
		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(1, 2), nil).Once()

		dc := NewDetailController(1, apiMock, dirMock, loggedIn(2, false), zap.NewNop())
		require.NoError(t, dc.Activate(ctx))
		assert.False(t, dc.IsParticipant())

		require.NoError(t, dc.Participate(ctx))
		assert.True(t, dc.IsParticipant())
		assert.ElementsMatch(t, []int64{1, 2}, dc.Session().AttendeeUserIDs)
		apiMock.AssertExpectations(t)
	})

	t.Run("unparticipate mirrors the re-fetch contract", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{ID: 3}, nil)

		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(1, 2), nil).Once()
		apiMock.On("UnParticipate", ctx, int64(1), int64(1)).Return(nil).Once()
		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(2), nil).Once()

		dc := NewDetailController(1, apiMock, dirMock, loggedIn(1, false), zap.NewNop())
		require.NoError(t, dc.Activate(ctx))
		require.NoError(t, dc.UnParticipate(ctx))

		assert.False(t, dc.IsParticipant())
		assert.Equal(t, []int64{2}, dc.Session().AttendeeUserIDs)
	})

	t.Run("toggle re-resolves the teacher from the re-fetched session", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{ID: 3, FirstName: "Margot"}, nil)
		dirMock.On("ByID", ctx, int64(4)).Return(models.Teacher{ID: 4, FirstName: "Hélène"}, nil)

		// The session is reassigned to another teacher between the first
		// fetch and the post-toggle resync.
		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(1), nil).Once()
		apiMock.On("Participate", ctx, int64(1), int64(2)).Return(nil).Once()
		apiMock.On("GetByID", ctx, int64(1)).Return(models.ClassSession{
			ID: 1, Name: "Morning Flow", TeacherID: 4, AttendeeUserIDs: []int64{1, 2},
		}, nil).Once()

		dc := NewDetailController(1, apiMock, dirMock, loggedIn(2, false), zap.NewNop())
		require.NoError(t, dc.Activate(ctx))
		require.NoError(t, dc.Participate(ctx))

		require.NotNil(t, dc.Teacher())
		assert.Equal(t, "Hélène", dc.Teacher().FirstName)
	})

	t.Run("failed toggle leaves the view state unchanged", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{ID: 3}, nil)

		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(1), nil).Once()
		apiMock.On("Participate", ctx, int64(1), int64(2)).Return(&serverFaultErr{})

		dc := NewDetailController(1, apiMock, dirMock, loggedIn(2, false), zap.NewNop())
		require.NoError(t, dc.Activate(ctx))

		assert.ErrorIs(t, dc.Participate(ctx), models.ErrServerFault)
		assert.False(t, dc.IsParticipant())
		assert.Equal(t, []int64{1}, dc.Session().AttendeeUserIDs)
	})

	t.Run("failed resync still surfaces after a successful mutation", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{ID: 3}, nil)

		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(), nil).Once()
		apiMock.On("Participate", ctx, int64(1), int64(2)).Return(nil)
		apiMock.On("GetByID", ctx, int64(1)).Return(models.ClassSession{}, &serverFaultErr{}).Once()

		dc := NewDetailController(1, apiMock, dirMock, loggedIn(2, false), zap.NewNop())
		require.NoError(t, dc.Activate(ctx))
		assert.Error(t, dc.Participate(ctx))
	})

	t.Run("toggle requires a logged-in user", func(t *testing.T) {
		dc := NewDetailController(1, new(MockSessionAPI), new(MockTeacherDirectory), loggedOut(), zap.NewNop())
		assert.ErrorIs(t, dc.Participate(ctx), models.ErrNotAuthenticated)
		assert.ErrorIs(t, dc.UnParticipate(ctx), models.ErrNotAuthenticated)
	})

	t.Run("overlapping toggles on the same instance are refused", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dirMock := new(MockTeacherDirectory)
		dirMock.On("ByID", ctx, int64(3)).Return(models.Teacher{ID: 3}, nil)
		dc := NewDetailController(1, apiMock, dirMock, loggedIn(2, false), zap.NewNop())

		var reentrantErr error
		apiMock.On("Participate", ctx, int64(1), int64(2)).Run(func(args mock.Arguments) {
			// Second click lands while the first request is in flight.
			reentrantErr = dc.UnParticipate(ctx)
		}).Return(nil)
		apiMock.On("GetByID", ctx, int64(1)).Return(detailFixture(2), nil)

		require.NoError(t, dc.Participate(ctx))
		assert.ErrorIs(t, reentrantErr, models.ErrRequestInFlight)
	})
}

func TestDetailControllerDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin deletes", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		apiMock.On("Delete", ctx, int64(1)).Return(nil)

		dc := NewDetailController(1, apiMock, new(MockTeacherDirectory), loggedIn(1, true), zap.NewNop())
		require.NoError(t, dc.Delete(ctx))
		apiMock.AssertExpectations(t)
	})

	t.Run("non-admin is forbidden without a network call", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		dc := NewDetailController(1, apiMock, new(MockTeacherDirectory), loggedIn(2, false), zap.NewNop())

		assert.ErrorIs(t, dc.Delete(ctx), models.ErrForbidden)
		apiMock.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("double delete surfaces not found", func(t *testing.T) {
		apiMock := new(MockSessionAPI)
		apiMock.On("Delete", ctx, int64(1)).Return(nil).Once()
		apiMock.On("Delete", ctx, int64(1)).Return(&notFoundErr{}).Once()

		dc := NewDetailController(1, apiMock, new(MockTeacherDirectory), loggedIn(1, true), zap.NewNop())
		require.NoError(t, dc.Delete(ctx))
		assert.ErrorIs(t, dc.Delete(ctx), models.ErrNotFound)
	})
}

func TestDetailControllerVisibility(t *testing.T) {
	t.Run("delete control rendered for admin only", func(t *testing.T) {
		admin := NewDetailController(1, new(MockSessionAPI), new(MockTeacherDirectory), loggedIn(1, true), zap.NewNop())
		member := NewDetailController(1, new(MockSessionAPI), new(MockTeacherDirectory), loggedIn(2, false), zap.NewNop())

		assert.True(t, admin.CanDelete())
		assert.False(t, member.CanDelete())
	})
}
