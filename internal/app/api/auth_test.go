package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/models"
	"github.com/savasana/yoga-web/internal/pkg/config"
)

func TestAuthClientLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Email != "yoga@studio.com" || req.Password != "test!1234" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.MessageResponse{Message: "Bad credentials"})
			return
		}
		json.NewEncoder(w).Encode(models.AuthSession{
			Token:     "jwt-token",
			TokenType: "Bearer",
			UserID:    1,
			Username:  "yoga@studio.com",
			FirstName: "Admin",
			LastName:  "Admin",
			Admin:     true,
		})
	}))
	t.Cleanup(srv.Close)
	client := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second}, staticToken(""), zap.NewNop())
	ctx := context.Background()

	t.Run("valid credentials yield a session", func(t *testing.T) {
		sess, err := client.Auth.Login(ctx, "yoga@studio.com", "test!1234")
		require.NoError(t, err)
		assert.Equal(t, int64(1), sess.UserID)
		assert.True(t, sess.Admin)
		assert.Equal(t, "jwt-token", sess.Token)
	})

	t.Run("bad credentials surface as unauthenticated", func(t *testing.T) {
		_, err := client.Auth.Login(ctx, "yoga@studio.com", "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})
}

func TestAuthClientRegister(t *testing.T) {
	duplicate := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		if duplicate {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.MessageResponse{Message: "Error: Email is already taken!"})
			return
		}
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "User registered successfully!"})
	}))
	t.Cleanup(srv.Close)
	client := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second}, staticToken(""), zap.NewNop())
	req := models.RegisterRequest{Email: "new@studio.com", FirstName: "New", LastName: "User", Password: "pass!1234"}

	t.Run("fresh email registers", func(t *testing.T) {
		assert.NoError(t, client.Auth.Register(context.Background(), req))
	})

	t.Run("duplicate email is a validation failure", func(t *testing.T) {
		duplicate = true
		err := client.Auth.Register(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}
