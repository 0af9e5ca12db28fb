package api

import (
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/pkg/config"
)

// Client bundles one resource client per backend collaborator. All of them
// share a single transport and token source.
type Client struct {
	Auth     *AuthClient
	Sessions *SessionClient
	Teachers *TeacherClient
	Users    *UserClient
}

func New(cfg config.UpstreamConfig, tokens TokenSource, logger *zap.Logger) *Client {
	rest := newRESTClient(cfg, tokens, logger.Named("api"))
	return &Client{
		Auth:     &AuthClient{rest: rest},
		Sessions: &SessionClient{rest: rest},
		Teachers: &TeacherClient{rest: rest},
		Users:    &UserClient{rest: rest},
	}
}
