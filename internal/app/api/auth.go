package api

import (
	"context"
	"net/http"

	"github.com/savasana/yoga-web/internal/app/models"
	"github.com/savasana/yoga-web/internal/app/observability/metrics"
)

// AuthClient speaks to the /api/auth endpoints.
type AuthClient struct {
	rest *restClient
}

// Login exchanges credentials for an AuthSession. Bad credentials come back
// as a 401 and surface as models.ErrUnauthenticated.
func (c *AuthClient) Login(ctx context.Context, email, password string) (models.AuthSession, error) {
	var sess models.AuthSession
	err := c.rest.do(ctx, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	}, &sess)
	metrics.RecordAuthAttempt(ctx, "login", err == nil)
	if err != nil {
		return models.AuthSession{}, err
	}
	return sess, nil
}

// Register creates a new account. A duplicate email comes back as a 400.
func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) error {
	var msg models.MessageResponse
	err := c.rest.do(ctx, http.MethodPost, "/api/auth/register", req, &msg)
	metrics.RecordAuthAttempt(ctx, "register", err == nil)
	return err
}
