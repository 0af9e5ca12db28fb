package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenExpiresAt extracts the expiry claim from the backend-issued bearer
// token without verifying its signature. The client never validates tokens
// (the backend does); the expiry is only surfaced for logging and for
// flagging sessions that will be rejected upstream.
func TokenExpiresAt(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "parse bearer token")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("bearer token has no expiry claim")
	}
	return exp.Time, nil
}
