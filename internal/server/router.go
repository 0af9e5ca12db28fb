package server

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/savasana/yoga-web/internal/app/domain"
	authdomain "github.com/savasana/yoga-web/internal/app/domain/auth"
	"github.com/savasana/yoga-web/internal/app/domain/sessions"
	userdomain "github.com/savasana/yoga-web/internal/app/domain/user"
	"github.com/savasana/yoga-web/internal/routes"
)

// SetupRouter configures and returns the Gin router with all middleware and
// routes.
func SetupRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	logger := s.Logger()
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(otelgin.Middleware("yoga-web"))

	base := domain.NewBaseHandler(logger)
	client := s.APIClient()
	handlers := &routes.AppHandlers{
		Auth:     authdomain.NewHandler(base, client.Auth, s.Store()),
		Sessions: sessions.NewHandler(base, client.Sessions, s.Teachers(), s.Store()),
		User:     userdomain.NewHandler(base, client.Users, s.Store()),
	}

	routes.Setup(r, handlers, s.Store(), logger.Named("guard"))

	return r
}

// zapContextFunc returns the Zap context function for request logging.
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}
		if requestID := c.Writer.Header().Get("X-Request-Id"); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}
		return fields
	}
}
