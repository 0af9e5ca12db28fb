package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/savasana/yoga-web/internal/app/models"
)

// SessionClient covers CRUD and participation on the class-session resource.
// Every call is a fresh round trip; callers re-fetch after a mutation to
// observe the post-mutation state.
type SessionClient struct {
	rest *restClient
}

// ListAll returns every session in server-defined order.
func (c *SessionClient) ListAll(ctx context.Context) ([]models.ClassSession, error) {
	var sessions []models.ClassSession
	if err := c.rest.do(ctx, http.MethodGet, "/api/session", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetByID fetches one session. An unknown id surfaces as models.ErrNotFound.
func (c *SessionClient) GetByID(ctx context.Context, id int64) (models.ClassSession, error) {
	var sess models.ClassSession
	if err := c.rest.do(ctx, http.MethodGet, sessionPath(id), nil, &sess); err != nil {
		return models.ClassSession{}, err
	}
	return sess, nil
}

// Create submits a draft; the server assigns id, attendee set and timestamps.
func (c *SessionClient) Create(ctx context.Context, draft models.SessionDraft) (models.ClassSession, error) {
	var sess models.ClassSession
	if err := c.rest.do(ctx, http.MethodPost, "/api/session", draft, &sess); err != nil {
		return models.ClassSession{}, err
	}
	return sess, nil
}

// Update replaces every editable field of a session. This is full-replace,
// not a partial patch: omitted fields would be blanked server-side.
func (c *SessionClient) Update(ctx context.Context, id int64, draft models.SessionDraft) (models.ClassSession, error) {
	var sess models.ClassSession
	if err := c.rest.do(ctx, http.MethodPut, sessionPath(id), draft, &sess); err != nil {
		return models.ClassSession{}, err
	}
	return sess, nil
}

// Delete removes a session. A second delete of the same id fails with
// models.ErrNotFound.
func (c *SessionClient) Delete(ctx context.Context, id int64) error {
	return c.rest.do(ctx, http.MethodDelete, sessionPath(id), nil, nil)
}

// Participate adds userID to the session's attendee set. The server's
// behavior for an already-participating user is unspecified, so callers must
// not treat this as idempotent.
func (c *SessionClient) Participate(ctx context.Context, sessionID, userID int64) error {
	return c.rest.do(ctx, http.MethodPost, participatePath(sessionID, userID), nil, nil)
}

// UnParticipate removes userID from the attendee set. Removing a non-member
// fails.
func (c *SessionClient) UnParticipate(ctx context.Context, sessionID, userID int64) error {
	return c.rest.do(ctx, http.MethodDelete, participatePath(sessionID, userID), nil, nil)
}

func sessionPath(id int64) string {
	return fmt.Sprintf("/api/session/%d", id)
}

func participatePath(sessionID, userID int64) string {
	return fmt.Sprintf("/api/session/%d/participate/%d", sessionID, userID)
}
